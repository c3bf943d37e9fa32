package core

import (
	"github.com/jask/datefocus/caldate"
	"github.com/jask/datefocus/enablement"
)

// ComputeBaseDate returns the first enabled day of month's month, scanning
// forward from the 1st. When no day is enabled the 1st is returned, so the
// result always lies inside the month.
func ComputeBaseDate(month caldate.Date, enabled enablement.Policy) caldate.Date {
	start := month.StartOfMonth()
	for i := 0; i < start.DaysInMonth(); i++ {
		if d := start.AddDays(i); enabled.Enabled(d) {
			return d
		}
	}
	return start
}

// ResolveFocusOrSelection picks the date that should receive keyboard focus.
// Zero dates mean "unset". Priority: explicit focus, then the committed value,
// then today, then the base date; each of the last three must be enabled and,
// for value and today, in the base date's month. It reports false when the
// displayed month has no focusable date.
func ResolveFocusOrSelection(focused, value, base, today caldate.Date, enabled enablement.Policy) (caldate.Date, bool) {
	if !focused.IsZero() {
		return focused, true
	}
	if !value.IsZero() && enabled.Enabled(value) && value.SameMonth(base) {
		return value, true
	}
	if !today.IsZero() && enabled.Enabled(today) && today.SameMonth(base) {
		return today, true
	}
	if enabled.Enabled(base) {
		return base, true
	}
	return caldate.Date{}, false
}
