package schedule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia-web/internal/models"
)

func hm(v string) *string { return &v }

func TestValidateBusinessHours_ClosedDaysAreValid(t *testing.T) {
	for day := 0; day < DaysInWeek; day++ {
		res := ValidateBusinessHours([]models.BusinessHour{{Day: day}})

		assert.False(t, res.HasErrors(), "day %d", day)
		msg, ok := res.Days[day]
		require.True(t, ok, "closed day %d must be recorded", day)
		assert.Empty(t, msg)
	}
}

func TestValidateBusinessHours_CloseNotAfterOpen(t *testing.T) {
	pairs := [][2]string{
		{"08:00", "07:00"},
		{"08:00", "08:00"},
		{"23:59", "00:00"},
		{"12:30", "12:29"},
	}

	for _, p := range pairs {
		res := ValidateBusinessHours([]models.BusinessHour{
			{Day: 1, Open: hm(p[0]), Close: hm(p[1])},
		})

		assert.True(t, res.HasErrors(), "open %s close %s", p[0], p[1])
		assert.Equal(t, MsgCloseBeforeOpen, res.Days[1])
	}
}

func TestValidateBusinessHours_Duplicate(t *testing.T) {
	res := ValidateBusinessHours([]models.BusinessHour{
		{Day: 2, Open: hm("08:00"), Close: hm("18:00")},
		{Day: 2},
	})

	assert.Equal(t, MsgDuplicateDay, res.Days[2])
	assert.Empty(t, res.General)
}

func TestValidateBusinessHours_BothOrNeither(t *testing.T) {
	res := ValidateBusinessHours([]models.BusinessHour{
		{Day: 3, Open: hm("08:00")},
		{Day: 4, Close: hm("18:00")},
	})

	assert.Equal(t, MsgBothOrNeither, res.Days[3])
	assert.Equal(t, MsgBothOrNeither, res.Days[4])
}

func TestValidateBusinessHours_FormatMessages(t *testing.T) {
	res := ValidateBusinessHours([]models.BusinessHour{
		{Day: 0, Open: hm("8:00"), Close: hm("18:00")},
		{Day: 1, Open: hm("08:00"), Close: hm("24:00")},
	})

	assert.Equal(t, MsgInvalidOpen, res.Days[0])
	assert.Equal(t, MsgInvalidClose, res.Days[1])
}

func TestValidateBusinessHours_GeneralErrorIsSticky(t *testing.T) {
	res := ValidateBusinessHours([]models.BusinessHour{
		{Day: 9, Open: hm("08:00"), Close: hm("18:00")},
		{Day: 1, Open: hm("08:00"), Close: hm("18:00")},
		{Day: -1},
		{Day: 2},
	})

	assert.Equal(t, MsgInvalidDay, res.General)
	assert.True(t, res.HasErrors())
	assert.Empty(t, res.Days[1])
	assert.Empty(t, res.Days[2])
	assert.NotContains(t, res.Days, 9)
}

func TestValidateBusinessHours_DecodedDayMustBeInteger(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing", `[{"open":"08:00","close":"18:00"}]`},
		{"null", `[{"day":null,"open":"08:00","close":"18:00"}]`},
		{"string", `[{"day":"1","open":"08:00","close":"18:00"}]`},
		{"fractional", `[{"day":1.5,"open":"08:00","close":"18:00"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hours []models.BusinessHour
			require.NoError(t, json.Unmarshal([]byte(tt.body), &hours))

			res := ValidateBusinessHours(hours)

			assert.Equal(t, MsgInvalidDay, res.General)
			assert.NotContains(t, res.Days, 0)
			assert.Empty(t, MergeWeek(hours)[0].Open)
		})
	}
}

func TestValidateBusinessHours_DecodedIntegerDay(t *testing.T) {
	var hours []models.BusinessHour
	require.NoError(t, json.Unmarshal([]byte(`[{"day":0,"open":"08:00","close":"18:00"},{"day":3.0}]`), &hours))

	res := ValidateBusinessHours(hours)

	assert.False(t, res.HasErrors())
	assert.Equal(t, 0, hours[0].Day)
	assert.Equal(t, 3, hours[1].Day)
	assert.True(t, hours[1].Closed())
}

func TestValidateBusinessHours_ValidWeek(t *testing.T) {
	week := DefaultWeek()
	week[1] = models.BusinessHour{Day: 1, Open: hm("09:00"), Close: hm("19:00")}
	week[6] = models.BusinessHour{Day: 6, Open: hm("08:00"), Close: hm("12:00")}

	res := ValidateBusinessHours(week)

	assert.False(t, res.HasErrors())
	assert.Len(t, res.Days, DaysInWeek)
	assert.Empty(t, res.Details())
}

func TestBusinessHoursErrors_Details(t *testing.T) {
	res := ValidateBusinessHours([]models.BusinessHour{
		{Day: 7},
		{Day: 1, Open: hm("08:00"), Close: hm("07:00")},
	})

	assert.Equal(t, map[string]string{
		"business_hours":   MsgInvalidDay,
		"business_hours.1": MsgCloseBeforeOpen,
	}, res.Details())
}

func TestMergeWeek(t *testing.T) {
	week := MergeWeek([]models.BusinessHour{
		{Day: 5, Open: hm("10:00"), Close: hm("20:00")},
		{Day: 5, Open: hm("11:00"), Close: hm("21:00")},
		{Day: 8, Open: hm("10:00"), Close: hm("20:00")},
	})

	require.Len(t, week, DaysInWeek)
	for d, h := range week {
		assert.Equal(t, d, h.Day)
	}
	assert.Equal(t, "10:00", *week[5].Open)
	assert.True(t, week[0].Closed())
}

func TestOpenDaysAndHoursFor(t *testing.T) {
	week := DefaultWeek()
	week[3] = models.BusinessHour{Day: 3, Open: hm("09:00"), Close: hm("18:00")}
	week[1] = models.BusinessHour{Day: 1, Open: hm("09:00"), Close: hm("18:00")}

	open := OpenDays(week)
	require.Len(t, open, 2)
	assert.Equal(t, 1, open[0].Day)
	assert.Equal(t, 3, open[1].Day)

	h, ok := HoursFor(week, 3)
	assert.True(t, ok)
	assert.Equal(t, "18:00", *h.Close)

	_, ok = HoursFor(week, 0)
	assert.False(t, ok)
}
