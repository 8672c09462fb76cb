package models

const (
	ReviewTargetBarbeiro  = "barbeiro"
	ReviewTargetBarbearia = "barbearia"
)

type Review struct {
	ID         int64  `json:"id,omitempty"`
	BookingID  int64  `json:"id_booking"`
	Target     string `json:"target"`
	Rating     int    `json:"rating"`
	Comentario string `json:"comentario,omitempty"`
}

// Rating agrega as avaliações de um barbeiro
type Rating struct {
	BarberID int64   `json:"barber_id"`
	Average  float64 `json:"average"`
	Count    int     `json:"count"`
}
