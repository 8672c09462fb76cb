package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbearia-web/internal/audit"
	domain "github.com/BruksfildServices01/barbearia-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-web/internal/domain/schedule"
	"github.com/BruksfildServices01/barbearia-web/internal/httperr"
	"github.com/BruksfildServices01/barbearia-web/internal/models"
	"github.com/BruksfildServices01/barbearia-web/internal/session"
)

// ======================================================
// Request (cliente)
// ======================================================

// RequestReschedule cria um pedido pendente; o agendamento não muda
type RequestReschedule struct {
	api   domain.Gateway
	audit *audit.Dispatcher
	now   Clock
}

func NewRequestReschedule(api domain.Gateway, audit *audit.Dispatcher, now Clock) *RequestReschedule {
	return &RequestReschedule{api: api, audit: audit, now: now}
}

func (uc *RequestReschedule) Execute(
	ctx context.Context,
	sess *session.Session,
	bookingID int64,
	in models.RescheduleInput,
) (*models.RescheduleRequest, error) {

	b, err := findBooking(ctx, uc.api, sess, bookingID)
	if err != nil {
		return nil, err
	}

	status, err := domain.ParseStatus(b.Status)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(status, roleOf(sess), domain.ActionReschedule); err != nil {
		return nil, err
	}

	now := uc.now()
	cfg := loadConfig(ctx, uc.api, sess, b.BarbeariaID)

	// ------------------------------
	// Novo horário
	// ------------------------------
	var week []models.BusinessHour
	fallback := schedule.DefaultDurationMinutes
	if cfg != nil {
		if len(cfg.BusinessHours) > 0 {
			week = schedule.MergeWeek(cfg.BusinessHours)
		}
		if cfg.DurationMinutes > 0 {
			fallback = cfg.DurationMinutes
		}
	}

	slotErrs := schedule.ValidateBookingSlot(
		schedule.SlotInput{Date: in.TargetDate, Time: in.TargetTime},
		week,
		schedule.TotalDuration(b.Services(), fallback),
		now,
	)
	if slotErrs.HasErrors() {
		return nil, httperr.ErrValidation("Verifique a nova data e horário.", slotDetailsForTarget(slotErrs))
	}

	// ------------------------------
	// Antecedência sobre o horário atual
	// ------------------------------
	if err := checkLeadTime(sess, b, rescheduleWindow, cfg, now); err != nil {
		return nil, err
	}

	created, err := uc.api.CreateReschedule(ctx, sess.Token, b.ID, in)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(auditEvent(ctx, sess, b.BarbeariaID, "reschedule_requested", "reschedule", created.ID, map[string]any{
		"booking_id":  b.ID,
		"target_date": in.TargetDate,
		"target_time": in.TargetTime,
	}))

	return created, nil
}

func slotDetailsForTarget(e schedule.SlotErrors) map[string]string {
	out := map[string]string{}
	for k, v := range e.Details() {
		switch k {
		case "date":
			out["target_date"] = v
		case "time":
			out["target_time"] = v
		default:
			out[k] = v
		}
	}
	return out
}

// ======================================================
// List
// ======================================================

type ListReschedules struct {
	api domain.Gateway
}

func NewListReschedules(api domain.Gateway) *ListReschedules {
	return &ListReschedules{api: api}
}

func (uc *ListReschedules) Execute(ctx context.Context, sess *session.Session, onlyPending bool) ([]models.RescheduleRequest, error) {
	reqs, err := uc.api.ListReschedules(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	if !onlyPending {
		return reqs, nil
	}

	pending := make([]models.RescheduleRequest, 0, len(reqs))
	for _, r := range reqs {
		if r.Pending() {
			pending = append(pending, r)
		}
	}
	return pending, nil
}

// ======================================================
// Resolve (dono)
// ======================================================

type ResolveReschedule struct {
	api    domain.Gateway
	audit  *audit.Dispatcher
	reload *ListReschedules
}

func NewResolveReschedule(api domain.Gateway, audit *audit.Dispatcher, reload *ListReschedules) *ResolveReschedule {
	return &ResolveReschedule{api: api, audit: audit, reload: reload}
}

func (uc *ResolveReschedule) Execute(
	ctx context.Context,
	sess *session.Session,
	rescheduleID int64,
	approve bool,
) ([]models.RescheduleRequest, error) {

	if roleOf(sess) != domain.RoleDono {
		return nil, httperr.ErrBusiness("action_not_allowed")
	}

	action := "reschedule_rejected"
	call := uc.api.RejectReschedule
	if approve {
		action = "reschedule_approved"
		call = uc.api.ApproveReschedule
	}

	if err := call(ctx, sess.Token, rescheduleID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(auditEvent(ctx, sess, 0, action, "reschedule", rescheduleID, nil))

	return uc.reload.Execute(ctx, sess, false)
}
