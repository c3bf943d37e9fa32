package core

import (
	"testing"
	"time"

	"github.com/jask/datefocus/caldate"
	"github.com/jask/datefocus/enablement"
)

func TestMoveFocusUnrestricted(t *testing.T) {
	d := date(2022, time.January, 31)
	tests := []struct {
		dir  Direction
		want caldate.Date
	}{
		{NextDay, date(2022, time.February, 1)},
		{PreviousDay, date(2022, time.January, 30)},
		{NextWeek, date(2022, time.February, 7)},
		{PreviousWeek, date(2022, time.January, 24)},
		{NextMonth, date(2022, time.February, 28)},
		{PreviousMonth, date(2021, time.December, 31)},
		{DirectionNone, d},
	}
	for _, tt := range tests {
		if got := MoveFocus(d, tt.dir, enablement.Always); got != tt.want {
			t.Errorf("MoveFocus(%v, %v) = %v, want %v", d, tt.dir, got, tt.want)
		}
	}
}

func TestMoveFocusSkipsDisabled(t *testing.T) {
	isOdd := enablement.Policy(func(d caldate.Date) bool { return d.Day()%2 == 1 })
	if got := MoveFocus(date(2022, time.January, 5), NextDay, isOdd); got != date(2022, time.January, 7) {
		t.Fatalf("next odd day = %v, want 2022-01-07", got)
	}

	noMondays := enablement.ExcludeWeekdays(time.Monday)
	sunday := date(2022, time.January, 2)
	if got := MoveFocus(sunday, NextDay, noMondays); got != date(2022, time.January, 4) || got.Weekday() != time.Tuesday {
		t.Fatalf("sunday next day = %v, want tuesday 2022-01-04", got)
	}
}

func TestMoveFocusMonthStepStaysInAdjacentMonth(t *testing.T) {
	noFeb28 := enablement.ExcludeDates(date(2022, time.February, 28))
	if got := MoveFocus(date(2022, time.January, 31), NextMonth, noFeb28); got != date(2022, time.February, 27) {
		t.Errorf("next month = %v, want 2022-02-27", got)
	}

	noDec1 := enablement.ExcludeDates(date(2021, time.December, 1))
	if got := MoveFocus(date(2022, time.January, 1), PreviousMonth, noDec1); got != date(2021, time.December, 2) {
		t.Errorf("previous month = %v, want 2021-12-02", got)
	}

	// Only the 10th of each month: the search runs back from the clamped day.
	tenth := enablement.Policy(func(d caldate.Date) bool { return d.Day() == 10 })
	if got := MoveFocus(date(2022, time.January, 31), NextMonth, tenth); got != date(2022, time.February, 10) {
		t.Errorf("next month = %v, want 2022-02-10", got)
	}

	// A fully disabled target month is passed over in the direction of travel.
	noFeb := enablement.Policy(func(d caldate.Date) bool { return d.Month() != time.February })
	if got := MoveFocus(date(2022, time.January, 15), NextMonth, noFeb); got != date(2022, time.March, 1) {
		t.Errorf("next month = %v, want 2022-03-01", got)
	}
	if got := MoveFocus(date(2022, time.March, 15), PreviousMonth, noFeb); got != date(2022, time.January, 31) {
		t.Errorf("previous month = %v, want 2022-01-31", got)
	}
}

func TestMoveFocusGivesUpWithinBound(t *testing.T) {
	calls := 0
	never := enablement.Policy(func(caldate.Date) bool {
		calls++
		return false
	})
	d := date(2022, time.June, 15)
	for _, dir := range []Direction{NextDay, PreviousDay, NextWeek, PreviousWeek, NextMonth, PreviousMonth, StartOfWeek, EndOfWeek} {
		if got := MoveFocus(d, dir, never); got != d {
			t.Errorf("MoveFocus(%v) = %v, want unchanged", dir, got)
		}
	}
	if calls > 8*(searchLimitDays+2) {
		t.Fatalf("policy called %d times", calls)
	}
}

func TestMoveFocusLeavesDisabledStart(t *testing.T) {
	d := date(2022, time.January, 10)
	onlyOthers := enablement.ExcludeDates(d)
	if got := MoveFocus(d, NextDay, onlyOthers); got != date(2022, time.January, 11) {
		t.Fatalf("got %v, want 2022-01-11", got)
	}
}

func TestMoveWeekBoundaries(t *testing.T) {
	wed := date(2022, time.January, 12)
	monday := FocusMover{StartOfWeek: time.Monday}
	sunday := FocusMover{StartOfWeek: time.Sunday}

	if got := monday.Move(wed, StartOfWeek, enablement.Always); got != date(2022, time.January, 10) {
		t.Errorf("monday start = %v", got)
	}
	if got := monday.Move(wed, EndOfWeek, enablement.Always); got != date(2022, time.January, 16) {
		t.Errorf("monday end = %v", got)
	}
	if got := sunday.Move(wed, StartOfWeek, enablement.Always); got != date(2022, time.January, 9) {
		t.Errorf("sunday start = %v", got)
	}
	if got := sunday.Move(wed, EndOfWeek, enablement.Always); got != date(2022, time.January, 15) {
		t.Errorf("sunday end = %v", got)
	}

	weekdays := enablement.ExcludeWeekdays(time.Saturday, time.Sunday)
	if got := sunday.Move(wed, StartOfWeek, weekdays); got != date(2022, time.January, 10) {
		t.Errorf("start skipping sunday = %v", got)
	}
	if got := sunday.Move(wed, EndOfWeek, weekdays); got != date(2022, time.January, 14) {
		t.Errorf("end skipping saturday = %v", got)
	}
}

func TestDirectionString(t *testing.T) {
	if NextWeek.String() != "next-week" || Direction(99).String() != "unknown" {
		t.Fatalf("unexpected direction names")
	}
}
