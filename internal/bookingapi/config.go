package bookingapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BruksfildServices01/barbearia-web/internal/models"
)

func (c *Client) GetConfig(ctx context.Context, token string, shopID int64) (*models.BarbeariaConfig, error) {
	var cfg models.BarbeariaConfig
	path := fmt.Sprintf("/barbearias/%d/config", shopID)
	if err := c.do(ctx, call{op: "config.get", method: http.MethodGet, path: path, token: token, out: &cfg}); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpdateConfig substitui a configuração inteira da barbearia
func (c *Client) UpdateConfig(ctx context.Context, token string, shopID int64, cfg models.BarbeariaConfig) error {
	path := fmt.Sprintf("/barbearias/%d/config", shopID)
	return c.do(ctx, call{op: "config.update", method: http.MethodPatch, path: path, token: token, body: cfg})
}
