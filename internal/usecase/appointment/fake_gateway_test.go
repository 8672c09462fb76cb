package appointment

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/BruksfildServices01/barbearia-web/internal/models"
	"github.com/BruksfildServices01/barbearia-web/internal/session"
)

// fakeGateway guarda as chamadas feitas; cada campo *Err força uma falha
type fakeGateway struct {
	mu sync.Mutex

	bookings    []models.Booking
	reschedules []models.RescheduleRequest
	services    []models.Servico
	config      *models.BarbeariaConfig

	bookingsErr    error
	reschedulesErr error
	servicesErr    error
	configErr      error
	mutationErr    error

	calls   []string
	created *models.BookingRequest
	rescIn  *models.RescheduleInput
}

var errUpstream = errors.New("upstream down")

func (f *fakeGateway) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeGateway) called(call string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (f *fakeGateway) GetConfig(_ context.Context, _ string, _ int64) (*models.BarbeariaConfig, error) {
	f.record("get_config")
	if f.configErr != nil {
		return nil, f.configErr
	}
	if f.config == nil {
		return &models.BarbeariaConfig{}, nil
	}
	return f.config, nil
}

func (f *fakeGateway) UpdateConfig(_ context.Context, _ string, _ int64, _ models.BarbeariaConfig) error {
	f.record("update_config")
	return f.mutationErr
}

func (f *fakeGateway) ListServices(_ context.Context, _ string, _ int64) ([]models.Servico, error) {
	f.record("list_services")
	return f.services, f.servicesErr
}

func (f *fakeGateway) ListBookings(_ context.Context, _ string, _ models.BookingFilter) ([]models.Booking, error) {
	f.record("list_bookings")
	return f.bookings, f.bookingsErr
}

func (f *fakeGateway) CreateBooking(_ context.Context, _ string, req models.BookingRequest) (*models.Booking, error) {
	f.record("create_booking")
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	f.created = &req
	return &models.Booking{ID: 99, BarbeariaID: req.BarbeariaID, Date: req.Date, Time: req.Time, Status: "pendente"}, nil
}

func (f *fakeGateway) Confirm(_ context.Context, _ string, _ int64) error {
	f.record("confirm")
	return f.mutationErr
}

func (f *fakeGateway) Cancel(_ context.Context, _ string, _ int64) error {
	f.record("cancel")
	return f.mutationErr
}

func (f *fakeGateway) Finalize(_ context.Context, _ string, _ int64) error {
	f.record("finalize")
	return f.mutationErr
}

func (f *fakeGateway) Remove(_ context.Context, _ string, _ int64) error {
	f.record("remove")
	return f.mutationErr
}

func (f *fakeGateway) ListReschedules(_ context.Context, _ string) ([]models.RescheduleRequest, error) {
	f.record("list_reschedules")
	return f.reschedules, f.reschedulesErr
}

func (f *fakeGateway) CreateReschedule(_ context.Context, _ string, bookingID int64, in models.RescheduleInput) (*models.RescheduleRequest, error) {
	f.record("create_reschedule")
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	f.rescIn = &in
	return &models.RescheduleRequest{
		ID:         7,
		BookingID:  bookingID,
		TargetDate: in.TargetDate,
		TargetTime: in.TargetTime,
		Status:     models.RescheduleStatusPendente,
	}, nil
}

func (f *fakeGateway) ApproveReschedule(_ context.Context, _ string, _ int64) error {
	f.record("approve_reschedule")
	return f.mutationErr
}

func (f *fakeGateway) RejectReschedule(_ context.Context, _ string, _ int64) error {
	f.record("reject_reschedule")
	return f.mutationErr
}

// ===============================
// Helpers
// ===============================

var saoPaulo = time.FixedZone("BRT", -3*60*60)

// quarta-feira, 10:00
func fixedNow() time.Time {
	return time.Date(2025, 3, 12, 10, 0, 0, 0, saoPaulo)
}

func sessionFor(role string, shopID *int64) *session.Session {
	return &session.Session{
		ID:    "sid",
		Token: "tok",
		User: models.User{
			ID:          1,
			Nome:        "Usuário",
			Role:        role,
			BarbeariaID: shopID,
		},
	}
}

func ptr[T any](v T) *T { return &v }

func openWeekdays(openAt, closeAt string) []models.BusinessHour {
	var week []models.BusinessHour
	for d := 1; d <= 5; d++ {
		week = append(week, models.BusinessHour{Day: d, Open: ptr(openAt), Close: ptr(closeAt)})
	}
	return week
}
