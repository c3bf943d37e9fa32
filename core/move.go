package core

import (
	"time"

	"github.com/jask/datefocus/caldate"
	"github.com/jask/datefocus/enablement"
)

// Direction is a keyboard navigation intent inside the day grid.
type Direction int

const (
	DirectionNone Direction = iota
	PreviousDay
	NextDay
	PreviousWeek
	NextWeek
	PreviousMonth
	NextMonth
	StartOfWeek
	EndOfWeek
)

var directionNames = [...]string{
	DirectionNone: "none",
	PreviousDay:   "previous-day",
	NextDay:       "next-day",
	PreviousWeek:  "previous-week",
	NextWeek:      "next-week",
	PreviousMonth: "previous-month",
	NextMonth:     "next-month",
	StartOfWeek:   "start-of-week",
	EndOfWeek:     "end-of-week",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// searchLimitDays bounds how far a move may travel looking for an enabled date.
const searchLimitDays = 366

// FocusMover computes keyboard focus moves. StartOfWeek is only consulted by
// the StartOfWeek and EndOfWeek directions.
type FocusMover struct {
	StartOfWeek time.Weekday
}

// MoveFocus moves with a Monday-first week.
func MoveFocus(current caldate.Date, dir Direction, enabled enablement.Policy) caldate.Date {
	return FocusMover{StartOfWeek: time.Monday}.Move(current, dir, enabled)
}

// Move returns the enabled date reached from current in direction dir,
// skipping disabled dates. If nothing enabled is found within a year, current
// is returned unchanged. The result may lie in another month; callers treat
// that as a month change.
func (m FocusMover) Move(current caldate.Date, dir Direction, enabled enablement.Policy) caldate.Date {
	switch dir {
	case PreviousDay:
		return seek(current, current.AddDays(-1), -1, enabled)
	case NextDay:
		return seek(current, current.AddDays(1), 1, enabled)
	case PreviousWeek:
		return seek(current, current.AddDays(-7), -7, enabled)
	case NextWeek:
		return seek(current, current.AddDays(7), 7, enabled)
	case PreviousMonth:
		return monthStep(current, -1, enabled)
	case NextMonth:
		return monthStep(current, 1, enabled)
	case StartOfWeek:
		for d := current.AddDays(-m.weekOffset(current)); d.Before(current); d = d.AddDays(1) {
			if enabled.Enabled(d) {
				return d
			}
		}
		return current
	case EndOfWeek:
		for d := current.AddDays(6 - m.weekOffset(current)); d.After(current); d = d.AddDays(-1) {
			if enabled.Enabled(d) {
				return d
			}
		}
		return current
	}
	return current
}

// weekOffset is the number of days between the start of d's week and d.
func (m FocusMover) weekOffset(d caldate.Date) int {
	return (int(d.Weekday()) - int(m.StartOfWeek) + 7) % 7
}

// monthStep lands on the same day of the adjacent month, clamped to its
// length. When that day is disabled the rest of the month is searched, in the
// direction of travel first and then back, before moving past it.
func monthStep(current caldate.Date, step int, enabled enablement.Policy) caldate.Date {
	target := current.AddMonths(step)
	for d := target; d.SameMonth(target); d = d.AddDays(step) {
		if enabled.Enabled(d) {
			return d
		}
	}
	for d := target.AddDays(-step); d.SameMonth(target); d = d.AddDays(-step) {
		if enabled.Enabled(d) {
			return d
		}
	}
	next := target.EndOfMonth().AddDays(1)
	if step < 0 {
		next = target.StartOfMonth().AddDays(-1)
	}
	return seek(current, next, step, enabled)
}

func seek(origin, candidate caldate.Date, step int, enabled enablement.Policy) caldate.Date {
	for !enabled.Enabled(candidate) {
		candidate = candidate.AddDays(step)
		if dist := origin.DaysUntil(candidate); dist > searchLimitDays || dist < -searchLimitDays {
			return origin
		}
	}
	return candidate
}
