package schedule

import (
	"fmt"
	"sort"

	"github.com/BruksfildServices01/barbearia-web/internal/models"
)

const DaysInWeek = 7

// ===============================
// Mensagens
// ===============================

const (
	MsgInvalidDay      = "Dia da semana inválido."
	MsgDuplicateDay    = "Dia duplicado."
	MsgBothOrNeither   = "Informe abertura e fechamento, ou deixe ambos vazios."
	MsgInvalidOpen     = "Horário de abertura inválido (use HH:MM)."
	MsgInvalidClose    = "Horário de fechamento inválido (use HH:MM)."
	MsgCloseBeforeOpen = "Horário de fechamento deve ser após a abertura."
)

// BusinessHoursErrors guarda o resultado da validação.
// String vazia significa sem erro.
type BusinessHoursErrors struct {
	General string         `json:"general,omitempty"`
	Days    map[int]string `json:"days"`
}

func (e BusinessHoursErrors) HasErrors() bool {
	if e.General != "" {
		return true
	}
	for _, msg := range e.Days {
		if msg != "" {
			return true
		}
	}
	return false
}

// Details achata os erros no formato de detalhes por campo
func (e BusinessHoursErrors) Details() map[string]string {
	out := map[string]string{}
	if e.General != "" {
		out["business_hours"] = e.General
	}
	for day, msg := range e.Days {
		if msg != "" {
			out[fmt.Sprintf("business_hours.%d", day)] = msg
		}
	}
	return out
}

// ===============================
// Validação
// ===============================

// ValidateBusinessHours valida a semana inteira numa única passada.
// Um dia fora de 0..6 gera o erro geral, que não é limpo por entradas seguintes.
func ValidateBusinessHours(hours []models.BusinessHour) BusinessHoursErrors {
	res := BusinessHoursErrors{Days: map[int]string{}}
	seen := make(map[int]bool, DaysInWeek)

	for _, h := range hours {
		if h.Day < 0 || h.Day >= DaysInWeek {
			res.General = MsgInvalidDay
			continue
		}

		if seen[h.Day] {
			res.Days[h.Day] = MsgDuplicateDay
			continue
		}
		seen[h.Day] = true

		if (h.Open == nil) != (h.Close == nil) {
			res.Days[h.Day] = MsgBothOrNeither
			continue
		}

		if h.Open == nil {
			// dia fechado
			res.Days[h.Day] = ""
			continue
		}

		res.Days[h.Day] = validateOpenClose(*h.Open, *h.Close)
	}

	return res
}

func validateOpenClose(openAt, closeAt string) string {
	if !IsValidTimeHHMM(openAt) {
		return MsgInvalidOpen
	}
	if !IsValidTimeHHMM(closeAt) {
		return MsgInvalidClose
	}
	if TimeToMinutes(closeAt) <= TimeToMinutes(openAt) {
		return MsgCloseBeforeOpen
	}
	return ""
}

// ===============================
// Semana
// ===============================

// DefaultWeek devolve os 7 dias fechados
func DefaultWeek() []models.BusinessHour {
	week := make([]models.BusinessHour, DaysInWeek)
	for d := range week {
		week[d] = models.BusinessHour{Day: d}
	}
	return week
}

// MergeWeek completa o que veio da API até os 7 dias, ordenados por dia.
// Entradas com dia inválido são ignoradas; em duplicatas vale a primeira.
func MergeWeek(fetched []models.BusinessHour) []models.BusinessHour {
	week := DefaultWeek()
	filled := make(map[int]bool, DaysInWeek)

	for _, h := range fetched {
		if h.Day < 0 || h.Day >= DaysInWeek || filled[h.Day] {
			continue
		}
		filled[h.Day] = true
		week[h.Day] = h
	}

	return week
}

// OpenDays é o subconjunto enviado à API ao salvar
func OpenDays(hours []models.BusinessHour) []models.BusinessHour {
	open := make([]models.BusinessHour, 0, len(hours))
	for _, h := range hours {
		if h.Open != nil && h.Close != nil {
			open = append(open, h)
		}
	}
	sort.SliceStable(open, func(i, j int) bool { return open[i].Day < open[j].Day })
	return open
}

// HoursFor devolve o expediente do dia, se estiver aberto
func HoursFor(hours []models.BusinessHour, weekday int) (models.BusinessHour, bool) {
	for _, h := range hours {
		if h.Day == weekday {
			if h.Open == nil || h.Close == nil {
				return h, false
			}
			return h, true
		}
	}
	return models.BusinessHour{Day: weekday}, false
}
