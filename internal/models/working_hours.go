package models

import (
	"bytes"
	"encoding/json"
	"math"
)

// InvalidDay marca um "day" ausente ou não inteiro; a validação o rejeita
const InvalidDay = -1

// BusinessHour representa o expediente de um dia da semana (0 = domingo).
// Open e Close nulos indicam dia fechado.
type BusinessHour struct {
	Day   int     `json:"day"`
	Open  *string `json:"open"`
	Close *string `json:"close"`
}

func (h BusinessHour) Closed() bool {
	return h.Open == nil && h.Close == nil
}

// UnmarshalJSON não assume domingo quando "day" falta ou não é inteiro
func (h *BusinessHour) UnmarshalJSON(data []byte) error {
	var raw struct {
		Day   json.RawMessage `json:"day"`
		Open  *string         `json:"open"`
		Close *string         `json:"close"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	h.Day = parseDay(raw.Day)
	h.Open = raw.Open
	h.Close = raw.Close
	return nil
}

func parseDay(raw json.RawMessage) int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return InvalidDay
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return InvalidDay
	}
	if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
		return InvalidDay
	}
	return int(n)
}

type BarbeariaConfig struct {
	DurationMinutes      int            `json:"duration_minutes"`
	CancelWindowDays     *int           `json:"cancel_window_days"`
	RescheduleWindowDays *int           `json:"reschedule_window_days"`
	BusinessHours        []BusinessHour `json:"business_hours"`
}
