package review

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/barbearia-web/internal/audit"
	"github.com/BruksfildServices01/barbearia-web/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barbearia-web/internal/domain/review"
	"github.com/BruksfildServices01/barbearia-web/internal/dto"
	"github.com/BruksfildServices01/barbearia-web/internal/httperr"
	"github.com/BruksfildServices01/barbearia-web/internal/logger"
	"github.com/BruksfildServices01/barbearia-web/internal/models"
	"github.com/BruksfildServices01/barbearia-web/internal/session"
)

// ======================================================
// Create
// ======================================================

type CreateReview struct {
	api   domain.Gateway
	audit *audit.Dispatcher
}

func NewCreateReview(api domain.Gateway, audit *audit.Dispatcher) *CreateReview {
	return &CreateReview{api: api, audit: audit}
}

// Execute só envia avaliações de agendamentos finalizados do próprio cliente
func (uc *CreateReview) Execute(ctx context.Context, sess *session.Session, in models.Review) (*models.Review, error) {
	if errs := domain.Validate(in); len(errs) > 0 {
		return nil, httperr.ErrValidation("Revise a avaliação.", errs)
	}
	action, _ := domain.ActionFor(in.Target)

	bookings, err := uc.api.ListBookings(ctx, sess.Token, models.BookingFilter{})
	if err != nil {
		return nil, err
	}
	var booking *models.Booking
	for i := range bookings {
		if bookings[i].ID == in.BookingID {
			booking = &bookings[i]
			break
		}
	}
	if booking == nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	status, err := appointment.ParseStatus(booking.Status)
	if err != nil {
		return nil, err
	}
	if err := appointment.Authorize(status, appointment.Role(sess.User.Role), action); err != nil {
		return nil, err
	}

	created, err := uc.api.CreateReview(ctx, sess.Token, in)
	if err != nil {
		return nil, err
	}

	ev := audit.Event{
		UserID:    sess.User.ID,
		Action:    "review_created",
		Entity:    "review",
		EntityID:  &created.ID,
		Metadata:  map[string]any{"booking_id": in.BookingID, "target": in.Target, "rating": in.Rating},
		RequestID: logger.RequestID(ctx),
	}
	if booking.BarbeariaID > 0 {
		ev.BarbeariaID = &booking.BarbeariaID
	}
	uc.audit.Dispatch(ev)

	return created, nil
}

// ======================================================
// Listagens
// ======================================================

type ListReviews struct {
	api domain.Gateway
}

func NewListReviews(api domain.Gateway) *ListReviews {
	return &ListReviews{api: api}
}

func (uc *ListReviews) ByBarber(ctx context.Context, sess *session.Session, barberID int64) (*dto.ReviewSummary, error) {
	reviews, err := uc.api.ListReviewsByBarber(ctx, sess.Token, barberID)
	if err != nil {
		return nil, err
	}
	return summarize(barberID, reviews), nil
}

func (uc *ListReviews) ByBarbershop(ctx context.Context, sess *session.Session, shopID int64) (*dto.ReviewSummary, error) {
	reviews, err := uc.api.ListReviewsByBarbershop(ctx, sess.Token, shopID)
	if err != nil {
		return nil, err
	}
	return summarize(0, reviews), nil
}

func summarize(id int64, reviews []models.Review) *dto.ReviewSummary {
	agg := domain.Aggregate(id, reviews)
	if reviews == nil {
		reviews = []models.Review{}
	}
	return &dto.ReviewSummary{Data: reviews, Average: agg.Average, Count: agg.Count}
}

// ======================================================
// Ratings por barbeiro (fan-out)
// ======================================================

type BarberRatings struct {
	api   domain.Gateway
	limit int
}

func NewBarberRatings(api domain.Gateway, limit int) *BarberRatings {
	if limit <= 0 {
		limit = 1
	}
	return &BarberRatings{api: api, limit: limit}
}

// Execute busca as avaliações de cada barbeiro em paralelo.
// Barbeiros cuja busca falha ficam de fora; a tela nunca falha por isso.
func (uc *BarberRatings) Execute(ctx context.Context, sess *session.Session, shopID int64) ([]dto.BarberRating, error) {
	barbers, err := uc.api.ListBarbers(ctx, sess.Token, shopID)
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		ratings = make(map[int64]models.Rating, len(barbers))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.limit)

	for _, b := range barbers {
		g.Go(func() error {
			reviews, err := uc.api.ListReviewsByBarber(gctx, sess.Token, b.ID)
			if err != nil {
				logger.FromContext(ctx).Warn().Err(err).Int64("barber_id", b.ID).Msg("barber reviews unavailable")
				return nil
			}
			r := domain.Aggregate(b.ID, reviews)

			mu.Lock()
			ratings[b.ID] = r
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	out := make([]dto.BarberRating, 0, len(ratings))
	for _, b := range barbers {
		r, ok := ratings[b.ID]
		if !ok {
			continue
		}
		out = append(out, dto.BarberRating{Barbeiro: b, Average: r.Average, Count: r.Count})
	}
	return out, nil
}
