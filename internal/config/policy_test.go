package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/datefocus/caldate"
)

func TestCalendarPolicy(t *testing.T) {
	cfg := CalendarConfig{
		DisabledWeekdays: []string{"mon"},
		DisabledDates:    []string{"2022-01-12"},
		MinDate:          "2022-01-05",
		MaxDate:          "2022-01-25",
	}
	policy, err := cfg.Policy()
	require.NoError(t, err)

	tests := []struct {
		day  int
		want bool
	}{
		{4, false},  // before min
		{5, true},   // wednesday
		{10, false}, // monday
		{11, true},
		{12, false}, // custom
		{25, true},
		{26, false}, // after max
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, policy(caldate.New(2022, time.January, tt.day)), "day %d", tt.day)
	}
}

func TestCalendarPolicyWeekdaysOnly(t *testing.T) {
	policy, err := CalendarConfig{WeekdaysOnly: true, DisabledDates: []string{"2022-01-04"}}.Policy()
	require.NoError(t, err)
	require.False(t, policy(caldate.New(2022, time.January, 1)), "saturday")
	require.True(t, policy(caldate.New(2022, time.January, 3)))
	require.False(t, policy(caldate.New(2022, time.January, 4)), "custom date")
}

func TestCalendarPolicyErrors(t *testing.T) {
	_, err := CalendarConfig{WeekdaysOnly: true, WeekendsOnly: true}.Policy()
	require.Error(t, err)

	_, err = CalendarConfig{DisabledWeekdays: []string{"nope"}}.Policy()
	require.Error(t, err)

	_, err = CalendarConfig{DisabledDates: []string{"2022-02-30"}}.Policy()
	require.True(t, errors.Is(err, caldate.ErrInvalidDate))

	_, err = CalendarConfig{MaxDate: "soon"}.Policy()
	require.ErrorIs(t, err, caldate.ErrInvalidDate)
}
