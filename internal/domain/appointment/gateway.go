package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbearia-web/internal/domain/schedule"
	"github.com/BruksfildServices01/barbearia-web/internal/models"
)

// Gateway é a porta para a API remota usada pelos casos de uso de agendamento
type Gateway interface {
	schedule.ConfigGateway

	// -------- Catalog --------
	ListServices(ctx context.Context, token string, shopID int64) ([]models.Servico, error)

	// -------- Booking --------
	ListBookings(ctx context.Context, token string, f models.BookingFilter) ([]models.Booking, error)
	CreateBooking(ctx context.Context, token string, req models.BookingRequest) (*models.Booking, error)
	Confirm(ctx context.Context, token string, id int64) error
	Cancel(ctx context.Context, token string, id int64) error
	Finalize(ctx context.Context, token string, id int64) error
	Remove(ctx context.Context, token string, id int64) error

	// -------- Reschedule --------
	ListReschedules(ctx context.Context, token string) ([]models.RescheduleRequest, error)
	CreateReschedule(ctx context.Context, token string, bookingID int64, in models.RescheduleInput) (*models.RescheduleRequest, error)
	ApproveReschedule(ctx context.Context, token string, id int64) error
	RejectReschedule(ctx context.Context, token string, id int64) error
}
