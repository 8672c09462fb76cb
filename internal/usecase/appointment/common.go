package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbearia-web/internal/audit"
	domain "github.com/BruksfildServices01/barbearia-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-web/internal/domain/schedule"
	"github.com/BruksfildServices01/barbearia-web/internal/httperr"
	"github.com/BruksfildServices01/barbearia-web/internal/logger"
	"github.com/BruksfildServices01/barbearia-web/internal/models"
	"github.com/BruksfildServices01/barbearia-web/internal/session"
)

// Clock devolve o "agora" no fuso da barbearia
type Clock func() time.Time

func roleOf(sess *session.Session) domain.Role {
	return domain.Role(sess.User.Role)
}

// findBooking procura o agendamento na listagem visível ao usuário
func findBooking(ctx context.Context, api domain.Gateway, sess *session.Session, id int64) (*models.Booking, error) {
	bookings, err := api.ListBookings(ctx, sess.Token, models.BookingFilter{})
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, httperr.ErrBusiness("booking_not_found")
}

// loadConfig é auxiliar: falha vira nil e só gera log
func loadConfig(ctx context.Context, api schedule.ConfigGateway, sess *session.Session, shopID int64) *models.BarbeariaConfig {
	if shopID <= 0 {
		return nil
	}
	cfg, err := api.GetConfig(ctx, sess.Token, shopID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("shop_id", shopID).Msg("shop config unavailable, skipping local checks")
		return nil
	}
	return cfg
}

// checkLeadTime aplica a janela de antecedência só para o cliente
func checkLeadTime(
	sess *session.Session,
	b *models.Booking,
	window func(*models.BarbeariaConfig) *int,
	cfg *models.BarbeariaConfig,
	now time.Time,
) error {
	if roleOf(sess) != domain.RoleCliente || cfg == nil {
		return nil
	}
	at, err := schedule.ParseSlot(b.Date, b.Time, now.Location())
	if err != nil {
		return nil
	}
	if !schedule.LeadTimeAllowed(at, now, window(cfg)) {
		return httperr.ErrBusiness("window_closed")
	}
	return nil
}

func cancelWindow(cfg *models.BarbeariaConfig) *int { return cfg.CancelWindowDays }
func rescheduleWindow(cfg *models.BarbeariaConfig) *int { return cfg.RescheduleWindowDays }

// auditEvent atribui o evento à barbearia do agendamento quando conhecida
func auditEvent(ctx context.Context, sess *session.Session, shopID int64, action, entity string, entityID int64, meta any) audit.Event {
	ev := audit.Event{
		UserID:    sess.User.ID,
		Action:    action,
		Entity:    entity,
		EntityID:  &entityID,
		Metadata:  meta,
		RequestID: logger.RequestID(ctx),
	}
	if shopID <= 0 {
		shopID, _ = sess.BarbeariaID()
	}
	if shopID > 0 {
		ev.BarbeariaID = &shopID
	}
	return ev
}
