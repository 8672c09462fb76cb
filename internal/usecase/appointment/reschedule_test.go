package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia-web/internal/httperr"
	"github.com/BruksfildServices01/barbearia-web/internal/models"
)

func TestRequestReschedule(t *testing.T) {
	cfg := &models.BarbeariaConfig{
		RescheduleWindowDays: ptr(1),
		BusinessHours:        openWeekdays("09:00", "18:00"),
	}

	tests := []struct {
		name    string
		booking models.Booking
		role    string
		in      models.RescheduleInput
		code    string
		detail  string
	}{
		{
			name:    "accepted",
			booking: models.Booking{ID: 1, BarbeariaID: 3, Date: "2025-03-20", Time: "10:00", Status: "confirmado"},
			role:    "cliente",
			in:      models.RescheduleInput{TargetDate: "2025-03-21", TargetTime: "14:00"},
		},
		{
			name:    "terminal booking",
			booking: models.Booking{ID: 1, BarbeariaID: 3, Date: "2025-03-20", Time: "10:00", Status: "cancelado"},
			role:    "cliente",
			in:      models.RescheduleInput{TargetDate: "2025-03-21", TargetTime: "14:00"},
			code:    "invalid_state",
		},
		{
			name:    "only clients reschedule",
			booking: models.Booking{ID: 1, BarbeariaID: 3, Date: "2025-03-20", Time: "10:00", Status: "pendente"},
			role:    "dono",
			in:      models.RescheduleInput{TargetDate: "2025-03-21", TargetTime: "14:00"},
			code:    "action_not_allowed",
		},
		{
			name:    "current slot too close",
			booking: models.Booking{ID: 1, BarbeariaID: 3, Date: "2025-03-12", Time: "18:00", Status: "confirmado"},
			role:    "cliente",
			in:      models.RescheduleInput{TargetDate: "2025-03-21", TargetTime: "14:00"},
			code:    "window_closed",
		},
		{
			name:    "target outside hours",
			booking: models.Booking{ID: 1, BarbeariaID: 3, Date: "2025-03-20", Time: "10:00", Status: "confirmado"},
			role:    "cliente",
			in:      models.RescheduleInput{TargetDate: "2025-03-21", TargetTime: "07:00"},
			detail:  "slot",
		},
		{
			name:    "target malformed",
			booking: models.Booking{ID: 1, BarbeariaID: 3, Date: "2025-03-20", Time: "10:00", Status: "confirmado"},
			role:    "cliente",
			in:      models.RescheduleInput{TargetDate: "21/03/2025", TargetTime: "14:00"},
			detail:  "target_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeGateway{bookings: []models.Booking{tt.booking}, config: cfg}
			uc := NewRequestReschedule(api, nil, fixedNow)

			got, err := uc.Execute(context.Background(), sessionFor(tt.role, nil), 1, tt.in)

			switch {
			case tt.code != "":
				assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
				assert.False(t, api.called("create_reschedule"))
			case tt.detail != "":
				var ve *httperr.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Contains(t, ve.Details, tt.detail)
				assert.False(t, api.called("create_reschedule"))
			default:
				require.NoError(t, err)
				assert.True(t, got.Pending())
				assert.Equal(t, tt.in, *api.rescIn)
				assert.False(t, api.called("cancel"))
			}
		})
	}
}

func TestListReschedules_OnlyPending(t *testing.T) {
	api := &fakeGateway{reschedules: []models.RescheduleRequest{
		{ID: 1, Status: models.RescheduleStatusPendente},
		{ID: 2, Status: models.RescheduleStatusAprovado},
	}}
	uc := NewListReschedules(api)

	all, err := uc.Execute(context.Background(), sessionFor("dono", nil), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := uc.Execute(context.Background(), sessionFor("dono", nil), true)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(1), pending[0].ID)
}

func TestResolveReschedule(t *testing.T) {
	api := &fakeGateway{}
	uc := NewResolveReschedule(api, nil, NewListReschedules(api))

	_, err := uc.Execute(context.Background(), sessionFor("dono", nil), 7, true)
	require.NoError(t, err)
	assert.True(t, api.called("approve_reschedule"))

	_, err = uc.Execute(context.Background(), sessionFor("dono", nil), 7, false)
	require.NoError(t, err)
	assert.True(t, api.called("reject_reschedule"))

	other := &fakeGateway{}
	_, err = NewResolveReschedule(other, nil, NewListReschedules(other)).Execute(context.Background(), sessionFor("cliente", nil), 7, true)
	assert.True(t, httperr.IsBusiness(err, "action_not_allowed"))
	assert.Empty(t, other.calls)
}
