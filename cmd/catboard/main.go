package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/catboard/internal/app"
	"github.com/dmitrijs2005/catboard/internal/config"
	"github.com/dmitrijs2005/catboard/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewJSONLogger(os.Stderr, slog.LevelInfo)

	a, err := app.NewApp(ctx, cfg, os.Stdin, os.Stdout, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	a.Run(ctx)

}
