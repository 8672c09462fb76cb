package bookingapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/BruksfildServices01/barbearia-web/internal/models"
)

func (c *Client) ListBookings(ctx context.Context, token string, f models.BookingFilter) ([]models.Booking, error) {
	q := url.Values{}
	if f.Date != "" {
		q.Set("date", f.Date)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.BarbeariaID > 0 {
		q.Set("id_barbearia", strconv.FormatInt(f.BarbeariaID, 10))
	}

	path := "/agendamentos"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var bookings []models.Booking
	if err := c.do(ctx, call{op: "agendamentos.list", method: http.MethodGet, path: path, token: token, out: &bookings}); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) CreateBooking(ctx context.Context, token string, req models.BookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, call{op: "agendamentos.create", method: http.MethodPost, path: "/agendamentos", token: token, body: req, out: &booking}); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) Confirm(ctx context.Context, token string, id int64) error {
	return c.patchBooking(ctx, token, id, "confirmar")
}

func (c *Client) Cancel(ctx context.Context, token string, id int64) error {
	return c.patchBooking(ctx, token, id, "cancelar")
}

func (c *Client) Finalize(ctx context.Context, token string, id int64) error {
	return c.patchBooking(ctx, token, id, "finalizar")
}

// Remove apaga o agendamento definitivamente
func (c *Client) Remove(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/agendamentos/%d", id)
	return c.do(ctx, call{op: "agendamentos.remove", method: http.MethodDelete, path: path, token: token})
}

func (c *Client) patchBooking(ctx context.Context, token string, id int64, verb string) error {
	path := fmt.Sprintf("/agendamentos/%d/%s", id, verb)
	return c.do(ctx, call{op: "agendamentos." + verb, method: http.MethodPatch, path: path, token: token})
}
