package models

const (
	RescheduleStatusPendente  = "pendente"
	RescheduleStatusAprovado  = "aprovado"
	RescheduleStatusRejeitado = "rejeitado"
)

type RescheduleRequest struct {
	ID             int64  `json:"id"`
	BookingID      int64  `json:"booking_id"`
	TargetDate     string `json:"target_date"`
	TargetTime     string `json:"target_time"`
	TargetBarberID *int64 `json:"target_barber_id,omitempty"`
	Status         string `json:"status"`
}

func (r RescheduleRequest) Pending() bool {
	return r.Status == RescheduleStatusPendente
}

type RescheduleInput struct {
	TargetDate     string `json:"target_date"`
	TargetTime     string `json:"target_time"`
	TargetBarberID *int64 `json:"target_barber_id,omitempty"`
}
