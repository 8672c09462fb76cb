package bookingapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BruksfildServices01/barbearia-web/internal/models"
)

func (c *Client) ListReviewsByBarber(ctx context.Context, token string, barberID int64) ([]models.Review, error) {
	var reviews []models.Review
	path := fmt.Sprintf("/avaliacoes/barbeiro/%d", barberID)
	if err := c.do(ctx, call{op: "avaliacoes.barbeiro", method: http.MethodGet, path: path, token: token, out: &reviews}); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) ListReviewsByBarbershop(ctx context.Context, token string, shopID int64) ([]models.Review, error) {
	var reviews []models.Review
	path := fmt.Sprintf("/avaliacoes/barbearia/%d", shopID)
	if err := c.do(ctx, call{op: "avaliacoes.barbearia", method: http.MethodGet, path: path, token: token, out: &reviews}); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, token string, review models.Review) (*models.Review, error) {
	var created models.Review
	if err := c.do(ctx, call{op: "avaliacoes.create", method: http.MethodPost, path: "/avaliacoes", token: token, body: review, out: &created}); err != nil {
		return nil, err
	}
	return &created, nil
}
