package review

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barbearia-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-web/internal/models"
)

func TestValidate(t *testing.T) {
	assert.Empty(t, Validate(models.Review{BookingID: 1, Target: "barbeiro", Rating: 5}))
	assert.Empty(t, Validate(models.Review{BookingID: 1, Target: "barbearia", Rating: 1}))

	errs := Validate(models.Review{Target: "cliente", Rating: 6})
	assert.Contains(t, errs, "id_booking")
	assert.Contains(t, errs, "target")
	assert.Contains(t, errs, "rating")

	assert.Contains(t, Validate(models.Review{BookingID: 1, Target: "barbeiro", Rating: 0}), "rating")
}

func TestActionFor(t *testing.T) {
	a, ok := ActionFor("barbeiro")
	assert.True(t, ok)
	assert.Equal(t, appointment.ActionReviewBarbeiro, a)

	a, ok = ActionFor("barbearia")
	assert.True(t, ok)
	assert.Equal(t, appointment.ActionReviewBarbearia, a)

	_, ok = ActionFor("")
	assert.False(t, ok)
}

func TestAggregate(t *testing.T) {
	r := Aggregate(3, []models.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}, {Rating: 9}})
	assert.Equal(t, models.Rating{BarberID: 3, Average: 4.3, Count: 3}, r)

	assert.Equal(t, models.Rating{BarberID: 4}, Aggregate(4, nil))
}
