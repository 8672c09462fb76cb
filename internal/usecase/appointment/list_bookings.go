package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barbearia-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-web/internal/domain/schedule"
	"github.com/BruksfildServices01/barbearia-web/internal/dto"
	"github.com/BruksfildServices01/barbearia-web/internal/logger"
	"github.com/BruksfildServices01/barbearia-web/internal/models"
	"github.com/BruksfildServices01/barbearia-web/internal/session"
	"github.com/BruksfildServices01/barbearia-web/internal/validators"
)

type ListBookings struct {
	api domain.Gateway
}

func NewListBookings(api domain.Gateway) *ListBookings {
	return &ListBookings{api: api}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	sess *session.Session,
	filter models.BookingFilter,
) (*dto.BookingList, error) {

	// ------------------------------
	// Agendamentos (obrigatório)
	// ------------------------------
	bookings, err := uc.api.ListBookings(ctx, sess.Token, filter)
	if err != nil {
		return nil, err
	}

	// ------------------------------
	// Auxiliares (falha só degrada a tela)
	// ------------------------------
	pending := map[int64]*models.RescheduleRequest{}
	reqs, err := uc.api.ListReschedules(ctx, sess.Token)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("reschedule list unavailable")
	}
	for i := range reqs {
		if reqs[i].Pending() {
			pending[reqs[i].BookingID] = &reqs[i]
		}
	}

	fallback := schedule.DefaultDurationMinutes
	if shopID, ok := sess.BarbeariaID(); ok {
		if cfg := loadConfig(ctx, uc.api, sess, shopID); cfg != nil && cfg.DurationMinutes > 0 {
			fallback = cfg.DurationMinutes
		}
	}

	// ------------------------------
	// Views
	// ------------------------------
	role := roleOf(sess)
	out := &dto.BookingList{Data: make([]dto.BookingView, 0, len(bookings))}
	for _, b := range bookings {
		view := toView(b, role, fallback)
		if r, ok := pending[b.ID]; ok {
			view.Reschedule = r
		}
		out.Data = append(out.Data, view)
	}
	out.Total = len(out.Data)
	out.PendingReschedules = len(pending)

	return out, nil
}

func toView(b models.Booking, role domain.Role, fallbackDuration int) dto.BookingView {
	services := b.Services()
	duration := schedule.TotalDuration(services, fallbackDuration)

	view := dto.BookingView{
		ID:              b.ID,
		BarbeariaID:     b.BarbeariaID,
		Services:        services,
		Date:            b.Date,
		Time:            b.Time,
		EstimatedEnd:    schedule.EstimatedEnd(b.Time, duration),
		DurationMinutes: duration,
		BarberID:        b.BarberID,
		Notes:           b.Notes,
		Status:          b.Status,
		Cliente:         toParticipant(b.Cliente),
		Barbeiro:        toParticipant(b.Barbeiro),
		Actions:         []string{},
	}
	if view.Services == nil {
		view.Services = []models.Servico{}
	}

	if status, err := domain.ParseStatus(b.Status); err == nil {
		for _, a := range domain.AvailableActions(status, role) {
			view.Actions = append(view.Actions, string(a))
		}
	}

	return view
}

func toParticipant(p *models.Participant) *dto.ParticipantView {
	if p == nil {
		return nil
	}
	return &dto.ParticipantView{
		ID:       p.ID,
		Nome:     p.Nome,
		Telefone: validators.FormatPhoneBR(p.Telefone),
	}
}
