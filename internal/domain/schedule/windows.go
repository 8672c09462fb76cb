package schedule

import (
	"time"

	"github.com/BruksfildServices01/barbearia-web/internal/models"
)

const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480
	MaxWindowDays      = 365
)

const (
	MsgDurationOutOfRange = "Duração deve estar entre 5 e 480 minutos."
	MsgWindowOutOfRange   = "Janela deve estar entre 0 e 365 dias."
)

type WindowErrors struct {
	Duration             string `json:"duration_minutes,omitempty"`
	CancelWindowDays     string `json:"cancel_window_days,omitempty"`
	RescheduleWindowDays string `json:"reschedule_window_days,omitempty"`
}

func (e WindowErrors) HasErrors() bool {
	return e.Duration != "" || e.CancelWindowDays != "" || e.RescheduleWindowDays != ""
}

func (e WindowErrors) Details() map[string]string {
	out := map[string]string{}
	if e.Duration != "" {
		out["duration_minutes"] = e.Duration
	}
	if e.CancelWindowDays != "" {
		out["cancel_window_days"] = e.CancelWindowDays
	}
	if e.RescheduleWindowDays != "" {
		out["reschedule_window_days"] = e.RescheduleWindowDays
	}
	return out
}

// ValidateWindowsAndDuration valida duração e janelas de antecedência.
// Janela nula é válida (sem restrição).
func ValidateWindowsAndDuration(cfg models.BarbeariaConfig) WindowErrors {
	var res WindowErrors

	if cfg.DurationMinutes < MinDurationMinutes || cfg.DurationMinutes > MaxDurationMinutes {
		res.Duration = MsgDurationOutOfRange
	}
	if !windowInRange(cfg.CancelWindowDays) {
		res.CancelWindowDays = MsgWindowOutOfRange
	}
	if !windowInRange(cfg.RescheduleWindowDays) {
		res.RescheduleWindowDays = MsgWindowOutOfRange
	}

	return res
}

func windowInRange(days *int) bool {
	if days == nil {
		return true
	}
	return *days >= 0 && *days <= MaxWindowDays
}

// NormalizeWindow troca 0 por nulo antes do envio: os dois significam
// "sem restrição" na API.
func NormalizeWindow(days *int) *int {
	if days == nil || *days == 0 {
		return nil
	}
	v := *days
	return &v
}

// LeadTimeAllowed diz se ainda há antecedência suficiente para o cliente
// cancelar ou reagendar. Janela nula ou zero não restringe.
func LeadTimeAllowed(appointmentAt, now time.Time, windowDays *int) bool {
	if windowDays == nil || *windowDays <= 0 {
		return true
	}
	window := time.Duration(*windowDays) * 24 * time.Hour
	return appointmentAt.Sub(now) >= window
}
