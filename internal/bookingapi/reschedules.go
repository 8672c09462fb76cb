package bookingapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BruksfildServices01/barbearia-web/internal/models"
)

func (c *Client) ListReschedules(ctx context.Context, token string) ([]models.RescheduleRequest, error) {
	var reqs []models.RescheduleRequest
	if err := c.do(ctx, call{op: "reagendamentos.list", method: http.MethodGet, path: "/reagendamentos", token: token, out: &reqs}); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (c *Client) CreateReschedule(ctx context.Context, token string, bookingID int64, in models.RescheduleInput) (*models.RescheduleRequest, error) {
	var created models.RescheduleRequest
	path := fmt.Sprintf("/agendamentos/%d/reagendamentos", bookingID)
	if err := c.do(ctx, call{op: "reagendamentos.create", method: http.MethodPost, path: path, token: token, body: in, out: &created}); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ApproveReschedule(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/reagendamentos/%d/aprovar", id)
	return c.do(ctx, call{op: "reagendamentos.aprovar", method: http.MethodPatch, path: path, token: token})
}

func (c *Client) RejectReschedule(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/reagendamentos/%d/rejeitar", id)
	return c.do(ctx, call{op: "reagendamentos.rejeitar", method: http.MethodPatch, path: path, token: token})
}
