package review

import (
	"context"
	"math"

	"github.com/BruksfildServices01/barbearia-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-web/internal/models"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Gateway é a porta para a API remota usada pelos casos de uso de avaliação
type Gateway interface {
	ListBarbers(ctx context.Context, token string, shopID int64) ([]models.Barbeiro, error)
	ListBookings(ctx context.Context, token string, f models.BookingFilter) ([]models.Booking, error)
	ListReviewsByBarber(ctx context.Context, token string, barberID int64) ([]models.Review, error)
	ListReviewsByBarbershop(ctx context.Context, token string, shopID int64) ([]models.Review, error)
	CreateReview(ctx context.Context, token string, r models.Review) (*models.Review, error)
}

// Validate devolve os erros por campo de uma nova avaliação
func Validate(r models.Review) map[string]string {
	errs := map[string]string{}
	if r.BookingID <= 0 {
		errs["id_booking"] = "Agendamento obrigatório."
	}
	if _, ok := ActionFor(r.Target); !ok {
		errs["target"] = "Avalie o barbeiro ou a barbearia."
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		errs["rating"] = "Nota deve estar entre 1 e 5."
	}
	return errs
}

// ActionFor liga o alvo da avaliação à ação do agendamento
func ActionFor(target string) (appointment.Action, bool) {
	switch target {
	case models.ReviewTargetBarbeiro:
		return appointment.ActionReviewBarbeiro, true
	case models.ReviewTargetBarbearia:
		return appointment.ActionReviewBarbearia, true
	default:
		return "", false
	}
}

// Aggregate calcula média (uma casa decimal) e quantidade
func Aggregate(barberID int64, reviews []models.Review) models.Rating {
	out := models.Rating{BarberID: barberID}
	sum := 0
	for _, r := range reviews {
		if r.Rating < MinRating || r.Rating > MaxRating {
			continue
		}
		sum += r.Rating
		out.Count++
	}
	if out.Count > 0 {
		out.Average = math.Round(float64(sum)/float64(out.Count)*10) / 10
	}
	return out
}
