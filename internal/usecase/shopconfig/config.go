package shopconfig

import (
	"context"

	"github.com/BruksfildServices01/barbearia-web/internal/audit"
	"github.com/BruksfildServices01/barbearia-web/internal/domain/schedule"
	"github.com/BruksfildServices01/barbearia-web/internal/httperr"
	"github.com/BruksfildServices01/barbearia-web/internal/logger"
	"github.com/BruksfildServices01/barbearia-web/internal/models"
	"github.com/BruksfildServices01/barbearia-web/internal/session"
)

const roleDono = "dono"

func shopOf(sess *session.Session) (int64, error) {
	shopID, ok := sess.BarbeariaID()
	if !ok {
		return 0, httperr.ErrBusiness("no_barbershop")
	}
	return shopID, nil
}

// ======================================================
// GetConfig
// ======================================================

type GetConfig struct {
	api schedule.ConfigGateway
}

func NewGetConfig(api schedule.ConfigGateway) *GetConfig {
	return &GetConfig{api: api}
}

// Execute devolve a configuração com os 7 dias da semana preenchidos
func (uc *GetConfig) Execute(ctx context.Context, sess *session.Session) (*models.BarbeariaConfig, error) {
	shopID, err := shopOf(sess)
	if err != nil {
		return nil, err
	}

	cfg, err := uc.api.GetConfig(ctx, sess.Token, shopID)
	if err != nil {
		return nil, err
	}

	out := *cfg
	out.BusinessHours = schedule.MergeWeek(cfg.BusinessHours)
	return &out, nil
}

// ======================================================
// SaveConfig
// ======================================================

type SaveConfig struct {
	api    schedule.ConfigGateway
	audit  *audit.Dispatcher
	reload *GetConfig
}

func NewSaveConfig(api schedule.ConfigGateway, audit *audit.Dispatcher, reload *GetConfig) *SaveConfig {
	return &SaveConfig{api: api, audit: audit, reload: reload}
}

// Execute valida tudo localmente; qualquer erro impede o PATCH
func (uc *SaveConfig) Execute(
	ctx context.Context,
	sess *session.Session,
	in models.BarbeariaConfig,
) (*models.BarbeariaConfig, error) {

	if sess.User.Role != roleDono {
		return nil, httperr.ErrBusiness("action_not_allowed")
	}
	shopID, err := shopOf(sess)
	if err != nil {
		return nil, err
	}

	// ------------------------------
	// Validação local
	// ------------------------------
	details := map[string]string{}
	if hoursErrs := schedule.ValidateBusinessHours(in.BusinessHours); hoursErrs.HasErrors() {
		for k, v := range hoursErrs.Details() {
			details[k] = v
		}
	}
	if windowErrs := schedule.ValidateWindowsAndDuration(in); windowErrs.HasErrors() {
		for k, v := range windowErrs.Details() {
			details[k] = v
		}
	}
	if len(details) > 0 {
		return nil, httperr.ErrValidation("Revise a configuração da barbearia.", details)
	}

	// ------------------------------
	// Normalização + envio
	// ------------------------------
	payload := models.BarbeariaConfig{
		DurationMinutes:      in.DurationMinutes,
		CancelWindowDays:     schedule.NormalizeWindow(in.CancelWindowDays),
		RescheduleWindowDays: schedule.NormalizeWindow(in.RescheduleWindowDays),
		BusinessHours:        schedule.OpenDays(in.BusinessHours),
	}

	if err := uc.api.UpdateConfig(ctx, sess.Token, shopID, payload); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbeariaID: &shopID,
		UserID:      sess.User.ID,
		Action:      "config_updated",
		Entity:      "barbearia",
		EntityID:    &shopID,
		Metadata: map[string]any{
			"duration_minutes": payload.DurationMinutes,
			"open_days":        len(payload.BusinessHours),
		},
		RequestID: logger.RequestID(ctx),
	})

	return uc.reload.Execute(ctx, sess)
}
