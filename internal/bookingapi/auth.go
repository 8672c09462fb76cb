package bookingapi

import (
	"context"
	"net/http"

	"github.com/BruksfildServices01/barbearia-web/internal/models"
)

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, call{op: "auth.login", method: http.MethodPost, path: "/auth/login", body: req, out: &resp}); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, call{op: "auth.register", method: http.MethodPost, path: "/auth/register", body: req, out: &resp}); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me devolve o usuário dono do token; usado para validar a sessão
func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, call{op: "auth.me", method: http.MethodGet, path: "/auth/me", token: token, out: &user}); err != nil {
		return nil, err
	}
	return &user, nil
}
