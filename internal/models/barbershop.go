package models

// Barbearia como exposta pela API de agendamento
type Barbearia struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	Endereco string `json:"endereco,omitempty"`
	Telefone string `json:"telefone,omitempty"`
}

type Barbeiro struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

type Servico struct {
	ID             int64   `json:"id"`
	Nome           string  `json:"nome"`
	DuracaoMinutos int     `json:"duracao_minutos"`
	Preco          float64 `json:"preco"`
}
