package schedule

import (
	"time"

	"github.com/BruksfildServices01/barbearia-web/internal/models"
)

const DateLayout = "2006-01-02"

const (
	MsgInvalidDate   = "Data inválida (use AAAA-MM-DD)."
	MsgInvalidTime   = "Horário inválido (use HH:MM)."
	MsgSlotInPast    = "Não é possível agendar no passado."
	MsgShopClosed    = "A barbearia não abre neste dia."
	MsgBeforeOpening = "Horário anterior à abertura."
	MsgAfterClosing  = "O atendimento termina após o fechamento."
)

type SlotInput struct {
	Date string
	Time string
}

type SlotErrors struct {
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
	General string `json:"general,omitempty"`
}

func (e SlotErrors) HasErrors() bool {
	return e.Date != "" || e.Time != "" || e.General != ""
}

func (e SlotErrors) Details() map[string]string {
	out := map[string]string{}
	if e.Date != "" {
		out["date"] = e.Date
	}
	if e.Time != "" {
		out["time"] = e.Time
	}
	if e.General != "" {
		out["slot"] = e.General
	}
	return out
}

// ParseSlot interpreta data e hora no fuso de loc
func ParseSlot(date, hhmm string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" 15:04", date+" "+hhmm, loc)
}

// ValidateBookingSlot valida data/hora de um novo agendamento contra o
// expediente da barbearia. now define o fuso. Semana nula pula a checagem
// de expediente (a API continua sendo a autoridade).
func ValidateBookingSlot(
	in SlotInput,
	week []models.BusinessHour,
	durationMinutes int,
	now time.Time,
) SlotErrors {

	var res SlotErrors

	day, err := time.ParseInLocation(DateLayout, in.Date, now.Location())
	if err != nil {
		res.Date = MsgInvalidDate
	}
	if !IsValidTimeHHMM(in.Time) {
		res.Time = MsgInvalidTime
	}
	if res.HasErrors() {
		return res
	}

	startMin := TimeToMinutes(in.Time)
	start := day.Add(time.Duration(startMin) * time.Minute)
	if start.Before(now) {
		res.General = MsgSlotInPast
		return res
	}

	if week == nil {
		return res
	}

	h, open := HoursFor(week, int(day.Weekday()))
	if !open || !IsValidTimeHHMM(*h.Open) || !IsValidTimeHHMM(*h.Close) {
		res.General = MsgShopClosed
		return res
	}

	switch {
	case startMin < TimeToMinutes(*h.Open):
		res.General = MsgBeforeOpening
	case startMin+durationMinutes > TimeToMinutes(*h.Close):
		res.General = MsgAfterClosing
	}

	return res
}

// ===============================
// Valores derivados
// ===============================

// TotalDuration soma a duração dos serviços; sem informação usa fallback
func TotalDuration(services []models.Servico, fallback int) int {
	total := 0
	for _, s := range services {
		if s.DuracaoMinutos > 0 {
			total += s.DuracaoMinutos
		}
	}
	if total == 0 {
		return fallback
	}
	return total
}

// EstimatedEnd devolve o horário previsto de término, ou "" se start for inválido
func EstimatedEnd(start string, minutes int) string {
	if !IsValidTimeHHMM(start) {
		return ""
	}
	return MinutesToTime(TimeToMinutes(start) + minutes)
}
