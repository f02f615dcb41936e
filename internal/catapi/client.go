// Package catapi fetches random cat pictures from a thecatapi.com compatible
// endpoint.
package catapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/catboard/internal/common"
	"github.com/dmitrijs2005/catboard/internal/config"
	"github.com/dmitrijs2005/catboard/internal/logging"
	"github.com/dmitrijs2005/catboard/internal/netx"
)

type image struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type Client struct {
	url        string
	httpClient *http.Client
	logger     logging.Logger
}

func NewClient(cfg *config.Config, l logging.Logger) *Client {
	return &Client{
		url:        cfg.CatAPIURL,
		httpClient: netx.NewClient(cfg.HTTPTimeout),
		logger:     l.With("module", "catapi"),
	}
}

// FetchRandom returns the url of the first image in the search response.
func (c *Client) FetchRandom(ctx context.Context) (string, error) {
	var images []image
	if err := netx.GetJSON(ctx, c.httpClient, c.url, &images); err != nil {
		c.logger.Warn(ctx, "cat api request failed", "error", err)
		return "", fmt.Errorf("fetch random cat: %w", err)
	}

	if len(images) == 0 || images[0].URL == "" {
		return "", common.ErrNoImage
	}

	c.logger.Debug(ctx, "cat fetched", "id", images[0].ID)
	return images[0].URL, nil
}
