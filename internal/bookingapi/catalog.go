package bookingapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BruksfildServices01/barbearia-web/internal/models"
)

func (c *Client) ListBarbershops(ctx context.Context, token string) ([]models.Barbearia, error) {
	var shops []models.Barbearia
	if err := c.do(ctx, call{op: "barbearias.list", method: http.MethodGet, path: "/barbearias", token: token, out: &shops}); err != nil {
		return nil, err
	}
	return shops, nil
}

func (c *Client) GetBarbershop(ctx context.Context, token string, id int64) (*models.Barbearia, error) {
	var shop models.Barbearia
	path := fmt.Sprintf("/barbearias/%d", id)
	if err := c.do(ctx, call{op: "barbearias.get", method: http.MethodGet, path: path, token: token, out: &shop}); err != nil {
		return nil, err
	}
	return &shop, nil
}

func (c *Client) ListServices(ctx context.Context, token string, shopID int64) ([]models.Servico, error) {
	var services []models.Servico
	path := fmt.Sprintf("/barbearias/%d/servicos", shopID)
	if err := c.do(ctx, call{op: "servicos.list", method: http.MethodGet, path: path, token: token, out: &services}); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) ListBarbers(ctx context.Context, token string, shopID int64) ([]models.Barbeiro, error) {
	var barbers []models.Barbeiro
	path := fmt.Sprintf("/barbearias/%d/barbeiros", shopID)
	if err := c.do(ctx, call{op: "barbeiros.list", method: http.MethodGet, path: path, token: token, out: &barbers}); err != nil {
		return nil, err
	}
	return barbers, nil
}
