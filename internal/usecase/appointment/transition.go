package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbearia-web/internal/audit"
	domain "github.com/BruksfildServices01/barbearia-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-web/internal/dto"
	"github.com/BruksfildServices01/barbearia-web/internal/httperr"
	"github.com/BruksfildServices01/barbearia-web/internal/models"
	"github.com/BruksfildServices01/barbearia-web/internal/session"
)

// TransitionBooking executa confirmar, cancelar ou finalizar.
// Nada muda localmente: após sucesso a lista é recarregada da API.
type TransitionBooking struct {
	api    domain.Gateway
	audit  *audit.Dispatcher
	reload *ListBookings
	now    Clock
}

func NewTransitionBooking(
	api domain.Gateway,
	audit *audit.Dispatcher,
	reload *ListBookings,
	now Clock,
) *TransitionBooking {
	return &TransitionBooking{
		api:    api,
		audit:  audit,
		reload: reload,
		now:    now,
	}
}

func (uc *TransitionBooking) Execute(
	ctx context.Context,
	sess *session.Session,
	bookingID int64,
	action domain.Action,
) (*dto.BookingList, error) {

	call, ok := uc.remoteCall(action)
	if !ok {
		return nil, httperr.ErrBusiness("action_not_allowed")
	}

	// ------------------------------
	// Estado atual + regras
	// ------------------------------
	b, err := findBooking(ctx, uc.api, sess, bookingID)
	if err != nil {
		return nil, err
	}

	status, err := domain.ParseStatus(b.Status)
	if err != nil {
		return nil, err
	}

	if err := domain.Authorize(status, roleOf(sess), action); err != nil {
		return nil, err
	}

	next, err := domain.Next(status, action)
	if err != nil {
		return nil, err
	}

	if action == domain.ActionCancel && roleOf(sess) == domain.RoleCliente {
		cfg := loadConfig(ctx, uc.api, sess, b.BarbeariaID)
		if err := checkLeadTime(sess, b, cancelWindow, cfg, uc.now()); err != nil {
			return nil, err
		}
	}

	// ------------------------------
	// Chamada remota
	// ------------------------------
	if err := call(ctx, sess.Token, b.ID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(auditEvent(ctx, sess, b.BarbeariaID, "booking_"+string(next), "booking", b.ID, map[string]string{
		"from": string(status),
		"to":   string(next),
	}))

	// ------------------------------
	// Recarrega
	// ------------------------------
	return uc.reload.Execute(ctx, sess, models.BookingFilter{})
}

func (uc *TransitionBooking) remoteCall(action domain.Action) (func(context.Context, string, int64) error, bool) {
	switch action {
	case domain.ActionConfirm:
		return uc.api.Confirm, true
	case domain.ActionCancel:
		return uc.api.Cancel, true
	case domain.ActionFinalize:
		return uc.api.Finalize, true
	default:
		return nil, false
	}
}
