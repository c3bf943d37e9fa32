// Package enablement holds the date enablement predicate consumed by the
// calendar core along with the combinators the host uses to build one from
// configuration.
package enablement

import (
	"slices"
	"time"

	"cloudeng.io/datetime"

	"github.com/jask/datefocus/caldate"
)

// Policy reports whether a date may be focused or selected. Implementations
// must be pure: the core calls them many times per transition.
type Policy func(caldate.Date) bool

// Enabled calls p, treating a nil policy as Always.
func (p Policy) Enabled(d caldate.Date) bool {
	if p == nil {
		return true
	}
	return p(d)
}

// Always enables every date.
func Always(caldate.Date) bool { return true }

// Never disables every date.
func Never(caldate.Date) bool { return false }

// All enables a date only when every policy does. Nil entries are skipped.
func All(policies ...Policy) Policy {
	policies = slices.DeleteFunc(slices.Clone(policies), func(p Policy) bool { return p == nil })
	if len(policies) == 0 {
		return Always
	}
	return func(d caldate.Date) bool {
		for _, p := range policies {
			if !p(d) {
				return false
			}
		}
		return true
	}
}

// ExcludeWeekdays disables the given days of the week.
func ExcludeWeekdays(days ...time.Weekday) Policy {
	var mask [7]bool
	for _, wd := range days {
		mask[((int(wd)%7)+7)%7] = true
	}
	return func(d caldate.Date) bool { return !mask[d.Weekday()] }
}

// ExcludeDates disables specific calendar days.
func ExcludeDates(dates ...caldate.Date) Policy {
	set := make(map[caldate.Date]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return func(d caldate.Date) bool {
		_, excluded := set[d]
		return !excluded
	}
}

// Between enables dates within [from, to]. A zero bound is open.
func Between(from, to caldate.Date) Policy {
	return func(d caldate.Date) bool {
		if !from.IsZero() && d.Before(from) {
			return false
		}
		if !to.IsZero() && d.After(to) {
			return false
		}
		return true
	}
}

// FromConstraints adapts a datetime.Constraints value. An empty Constraints
// enables every date. Custom dates take precedence over the weekday and
// weekend flags, as they do in Constraints.Include.
func FromConstraints(c datetime.Constraints) Policy {
	if c.Empty() {
		return Always
	}
	return func(d caldate.Date) bool { return c.Include(d.Time()) }
}

// CalendarDates converts dates to the list form datetime.Constraints uses.
func CalendarDates(dates ...caldate.Date) datetime.CalendarDateList {
	out := make(datetime.CalendarDateList, 0, len(dates))
	for _, d := range dates {
		out = append(out, datetime.NewCalendarDate(d.Year(), datetime.Month(d.Month()), d.Day()))
	}
	return out
}
