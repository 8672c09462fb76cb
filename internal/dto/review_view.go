package dto

import "github.com/BruksfildServices01/barbearia-web/internal/models"

// ReviewSummary é a lista de avaliações com a média calculada
type ReviewSummary struct {
	Data    []models.Review `json:"data"`
	Average float64         `json:"average"`
	Count   int             `json:"count"`
}

// BarberRating junta o barbeiro à sua média
type BarberRating struct {
	Barbeiro models.Barbeiro `json:"barbeiro"`
	Average  float64         `json:"average"`
	Count    int             `json:"count"`
}
