package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-web/internal/domain/schedule"
	"github.com/BruksfildServices01/barbearia-web/internal/httperr"
	"github.com/BruksfildServices01/barbearia-web/internal/models"
	ucConfig "github.com/BruksfildServices01/barbearia-web/internal/usecase/shopconfig"
	"github.com/BruksfildServices01/barbearia-web/internal/validators"
)

type ConfigHandler struct {
	get  *ucConfig.GetConfig
	save *ucConfig.SaveConfig
}

func NewConfigHandler(get *ucConfig.GetConfig, save *ucConfig.SaveConfig) *ConfigHandler {
	return &ConfigHandler{get: get, save: save}
}

func (h *ConfigHandler) Get(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	cfg, err := h.get.Execute(c.Request.Context(), sess)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateConfigRequest substitui a semana inteira; sem business_hours o
// formulário está incompleto e nada é enviado. Lista vazia fecha todos os dias.
type UpdateConfigRequest struct {
	DurationMinutes      int                   `json:"duration_minutes"`
	CancelWindowDays     *int                  `json:"cancel_window_days"`
	RescheduleWindowDays *int                  `json:"reschedule_window_days"`
	BusinessHours        []models.BusinessHour `json:"business_hours" binding:"required"`
}

// Update só chama a API se horário, duração e janelas forem válidos
func (h *ConfigHandler) Update(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var req UpdateConfigRequest
	if !bindJSON(c, &req) {
		return
	}

	cfg, err := h.save.Execute(c.Request.Context(), sess, models.BarbeariaConfig{
		DurationMinutes:      req.DurationMinutes,
		CancelWindowDays:     req.CancelWindowDays,
		RescheduleWindowDays: req.RescheduleWindowDays,
		BusinessHours:        req.BusinessHours,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// ======================================================
// Validação sem efeito colateral (usada pelos formulários)
// ======================================================

type BusinessHoursRequest struct {
	BusinessHours []models.BusinessHour `json:"business_hours" binding:"required"`
}

type BusinessHoursResponse struct {
	Valid   bool              `json:"valid"`
	General string            `json:"general,omitempty"`
	Days    map[int]string    `json:"days"`
	Details map[string]string `json:"details"`
}

func ValidateBusinessHours(c *gin.Context) {
	var req BusinessHoursRequest
	if !bindJSON(c, &req) {
		return
	}

	res := schedule.ValidateBusinessHours(req.BusinessHours)
	c.JSON(http.StatusOK, BusinessHoursResponse{
		Valid:   !res.HasErrors(),
		General: res.General,
		Days:    res.Days,
		Details: res.Details(),
	})
}

type PhoneRequest struct {
	Telefone string `json:"telefone"`
}

type PhoneResponse struct {
	Valid     bool   `json:"valid"`
	Digits    string `json:"digits"`
	Formatted string `json:"formatted"`
}

func ValidatePhone(c *gin.Context) {
	var req PhoneRequest
	if !bindJSON(c, &req) {
		return
	}

	digits, _ := validators.NormalizePhoneToDigits(req.Telefone)
	c.JSON(http.StatusOK, PhoneResponse{
		Valid:     validators.IsValidPhoneBR(digits),
		Digits:    digits,
		Formatted: validators.FormatPhoneBR(req.Telefone),
	})
}
