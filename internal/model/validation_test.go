package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHours_Validate(t *testing.T) {
	tests := []struct {
		name  string
		hours int16
		want  FieldErrors
	}{
		{name: "zero", hours: 0, want: FieldErrors{{Name: "hours", Message: "can not be zero"}}},
		{name: "too many", hours: 25, want: FieldErrors{{Name: "hours", Message: "can not be larger than 24"}}},
		{name: "far too many", hours: 100, want: FieldErrors{{Name: "hours", Message: "can not be larger than 24"}}},
		{name: "negative", hours: -1, want: FieldErrors{{Name: "hours", Message: "can not be negative"}}},
		{name: "lower bound", hours: 1},
		{name: "upper bound", hours: 24},
		{name: "working day", hours: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newHoursFixture()
			n.Hours = tt.hours

			err := n.Validate()

			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			var fieldErrs FieldErrors
			require.True(t, errors.As(err, &fieldErrs))
			assert.Equal(t, tt.want, fieldErrs)
		})
	}
}

func TestNewHours_ValidateDate(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want FieldErrors
	}{
		{name: "missing", date: Date{}, want: FieldErrors{{Name: "date", Message: "is required"}}},
		{name: "february 30th", date: Date{Year: 2021, Month: time.February, Day: 30}, want: FieldErrors{{Name: "date", Message: "is not a valid date"}}},
		{name: "month 13", date: Date{Year: 2021, Month: 13, Day: 1}, want: FieldErrors{{Name: "date", Message: "is not a valid date"}}},
		{name: "day zero", date: Date{Year: 2021, Month: time.March, Day: 0}, want: FieldErrors{{Name: "date", Message: "is not a valid date"}}},
		{name: "no leap day in 2021", date: Date{Year: 2021, Month: time.February, Day: 29}, want: FieldErrors{{Name: "date", Message: "is not a valid date"}}},
		{name: "leap day", date: Date{Year: 2024, Month: time.February, Day: 29}},
		{name: "new year's eve", date: Date{Year: 2021, Month: time.December, Day: 31}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newHoursFixture()
			n.Date = tt.date

			err := n.Validate()

			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			var fieldErrs FieldErrors
			require.True(t, errors.As(err, &fieldErrs))
			assert.Equal(t, tt.want, fieldErrs)
		})
	}
}

func TestNewHours_ValidateReportsAllFields(t *testing.T) {
	n := newHoursFixture()
	n.Date = Date{}
	n.Hours = 0

	err := n.Validate()

	var fieldErrs FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.ElementsMatch(t, FieldErrors{
		{Name: "date", Message: "is required"},
		{Name: "hours", Message: "can not be zero"},
	}, fieldErrs)
	assert.Contains(t, err.Error(), "hours: can not be zero")
}
