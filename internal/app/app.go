// Package app wires the catboard components together and runs the CLI until
// the user quits or the process is signaled.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/catboard/internal/auth"
	"github.com/dmitrijs2005/catboard/internal/blobstore"
	"github.com/dmitrijs2005/catboard/internal/catapi"
	"github.com/dmitrijs2005/catboard/internal/cli"
	"github.com/dmitrijs2005/catboard/internal/config"
	"github.com/dmitrijs2005/catboard/internal/docstore"
	"github.com/dmitrijs2005/catboard/internal/logging"
	"github.com/dmitrijs2005/catboard/internal/repositories/repomanager"
	"github.com/dmitrijs2005/catboard/internal/view"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	controller *view.Controller
	cli        *cli.App
}

// NewApp opens the database (running migrations), builds the remote
// adapters and the view controller.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer, logger logging.Logger) (*App, error) {
	db, rm, err := repomanager.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	store, err := docstore.NewStore(db, rm, c.Collection, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	blobs, err := blobstore.NewStore(ctx, c, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	authService := auth.NewService(db, rm, c, logger)
	cats := catapi.NewClient(c, logger)

	ctrl := view.New(store, authService, blobs, cats, c, logger)

	return &App{
		config:     c,
		logger:     logger,
		db:         db,
		controller: ctrl,
		cli:        cli.NewApp(ctrl, store.Collection(), in, out, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run blocks until the CLI exits.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	app.cli.Run(ctx)

	if err := app.Close(); err != nil {
		app.logger.Error(ctx, "close failed", "error", err)
	}
	app.logger.Info(ctx, "Stopped")
}

// Close stops the controller and releases the database.
func (app *App) Close() error {
	app.controller.Close()
	return app.db.Close()
}
