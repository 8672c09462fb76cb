package dto

import "github.com/BruksfildServices01/barbearia-web/internal/models"

// BookingView é o agendamento pronto para a interface
type BookingView struct {
	ID              int64                     `json:"id"`
	BarbeariaID     int64                     `json:"id_barbearia"`
	Services        []models.Servico          `json:"servicos"`
	Date            string                    `json:"date"`
	Time            string                    `json:"time"`
	EstimatedEnd    string                    `json:"estimated_end,omitempty"`
	DurationMinutes int                       `json:"duration_minutes"`
	BarberID        int64                     `json:"barber_id"`
	Notes           string                    `json:"notes,omitempty"`
	Status          string                    `json:"status"`
	Cliente         *ParticipantView          `json:"cliente,omitempty"`
	Barbeiro        *ParticipantView          `json:"barbeiro,omitempty"`
	Actions         []string                  `json:"actions"`
	Reschedule      *models.RescheduleRequest `json:"pending_reschedule,omitempty"`
}

type ParticipantView struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone,omitempty"`
}

// BookingList é a resposta da listagem
type BookingList struct {
	Data               []BookingView `json:"data"`
	Total              int           `json:"total"`
	PendingReschedules int           `json:"pending_reschedules"`
}
