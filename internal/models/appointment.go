package models

// Participant é o cliente ou barbeiro embutido num agendamento
type Participant struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone,omitempty"`
}

type Booking struct {
	ID          int64        `json:"id"`
	BarbeariaID int64        `json:"id_barbearia"`
	Servico     *Servico     `json:"servico,omitempty"`
	Servicos    []Servico    `json:"servicos,omitempty"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	BarberID    int64        `json:"barber_id"`
	Notes       string       `json:"notes,omitempty"`
	Status      string       `json:"status"`
	Cliente     *Participant `json:"cliente,omitempty"`
	Barbeiro    *Participant `json:"barbeiro,omitempty"`
}

// Services devolve a lista de serviços, aceitando os dois formatos da API
func (b Booking) Services() []Servico {
	if len(b.Servicos) > 0 {
		return b.Servicos
	}
	if b.Servico != nil {
		return []Servico{*b.Servico}
	}
	return nil
}

type BookingRequest struct {
	BarbeariaID int64   `json:"id_barbearia"`
	ServicoIDs  []int64 `json:"servicos"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	BarberID    int64   `json:"barber_id"`
	Notes       string  `json:"notes,omitempty"`
}

// BookingFilter são os filtros opcionais da listagem
type BookingFilter struct {
	Date        string
	Status      string
	BarbeariaID int64
}
