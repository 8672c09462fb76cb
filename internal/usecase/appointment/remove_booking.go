package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbearia-web/internal/audit"
	domain "github.com/BruksfildServices01/barbearia-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-web/internal/dto"
	"github.com/BruksfildServices01/barbearia-web/internal/models"
	"github.com/BruksfildServices01/barbearia-web/internal/session"
)

// RemoveBooking apaga o agendamento (somente dono, qualquer status)
type RemoveBooking struct {
	api    domain.Gateway
	audit  *audit.Dispatcher
	reload *ListBookings
}

func NewRemoveBooking(api domain.Gateway, audit *audit.Dispatcher, reload *ListBookings) *RemoveBooking {
	return &RemoveBooking{api: api, audit: audit, reload: reload}
}

func (uc *RemoveBooking) Execute(
	ctx context.Context,
	sess *session.Session,
	bookingID int64,
) (*dto.BookingList, error) {

	b, err := findBooking(ctx, uc.api, sess, bookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.Authorize(domain.Status(b.Status), roleOf(sess), domain.ActionRemove); err != nil {
		return nil, err
	}

	if err := uc.api.Remove(ctx, sess.Token, b.ID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(auditEvent(ctx, sess, b.BarbeariaID, "booking_removed", "booking", b.ID, map[string]string{
		"status": b.Status,
	}))

	return uc.reload.Execute(ctx, sess, models.BookingFilter{})
}
