package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbearia-web/internal/audit"
	domain "github.com/BruksfildServices01/barbearia-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-web/internal/domain/schedule"
	"github.com/BruksfildServices01/barbearia-web/internal/dto"
	"github.com/BruksfildServices01/barbearia-web/internal/httperr"
	"github.com/BruksfildServices01/barbearia-web/internal/logger"
	"github.com/BruksfildServices01/barbearia-web/internal/models"
	"github.com/BruksfildServices01/barbearia-web/internal/session"
)

type CreateBooking struct {
	api   domain.Gateway
	audit *audit.Dispatcher
	now   Clock
}

func NewCreateBooking(api domain.Gateway, audit *audit.Dispatcher, now Clock) *CreateBooking {
	return &CreateBooking{api: api, audit: audit, now: now}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	sess *session.Session,
	req models.BookingRequest,
) (*dto.BookingView, error) {

	// ------------------------------
	// Validação local contra o expediente
	// ------------------------------
	cfg := loadConfig(ctx, uc.api, sess, req.BarbeariaID)
	duration := uc.duration(ctx, sess, req, cfg)

	var week []models.BusinessHour
	if cfg != nil && len(cfg.BusinessHours) > 0 {
		week = schedule.MergeWeek(cfg.BusinessHours)
	}

	slotErrs := schedule.ValidateBookingSlot(
		schedule.SlotInput{Date: req.Date, Time: req.Time},
		week,
		duration,
		uc.now(),
	)
	if slotErrs.HasErrors() {
		return nil, httperr.ErrValidation("Verifique a data e o horário.", slotErrs.Details())
	}

	// ------------------------------
	// Criação remota
	// ------------------------------
	booking, err := uc.api.CreateBooking(ctx, sess.Token, req)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(auditEvent(ctx, sess, req.BarbeariaID, "booking_created", "booking", booking.ID, map[string]any{
		"date": req.Date,
		"time": req.Time,
	}))

	view := toView(*booking, roleOf(sess), duration)
	return &view, nil
}

// duration soma os serviços escolhidos; sem catálogo usa a configuração
func (uc *CreateBooking) duration(
	ctx context.Context,
	sess *session.Session,
	req models.BookingRequest,
	cfg *models.BarbeariaConfig,
) int {
	fallback := schedule.DefaultDurationMinutes
	if cfg != nil && cfg.DurationMinutes > 0 {
		fallback = cfg.DurationMinutes
	}

	catalog, err := uc.api.ListServices(ctx, sess.Token, req.BarbeariaID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("service catalog unavailable, using default duration")
		return fallback
	}

	wanted := make(map[int64]bool, len(req.ServicoIDs))
	for _, id := range req.ServicoIDs {
		wanted[id] = true
	}
	var chosen []models.Servico
	for _, s := range catalog {
		if wanted[s.ID] {
			chosen = append(chosen, s)
		}
	}
	return schedule.TotalDuration(chosen, fallback)
}
