// Package caldate provides a calendar-day value type together with the date
// arithmetic used by the calendar core. Dates carry no time-of-day or zone and
// compare with ==.
package caldate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// ISOLayout is the layout used for committed values.
const ISOLayout = "2006-01-02"

// ErrInvalidDate is returned by Parse for malformed or out of range input.
var ErrInvalidDate = errors.New("invalid calendar date")

// Date is an immutable calendar day. The zero value is not a valid date and
// reports IsZero.
type Date struct {
	year  int
	month time.Month
	day   int
}

// New returns the date for year, month and day, normalizing overflowing
// values the same way time.Date does (for example, January 32 is February 1).
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar day of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) Year() int              { return d.year }
func (d Date) Month() time.Month      { return d.month }
func (d Date) Day() int               { return d.day }
func (d Date) IsZero() bool           { return d == Date{} }
func (d Date) Weekday() time.Weekday  { return d.Time().Weekday() }
func (d Date) Equal(other Date) bool  { return d == other }
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return cmpInt(d.year, other.year)
	case d.month != other.month:
		return cmpInt(int(d.month), int(other.month))
	default:
		return cmpInt(d.day, other.day)
	}
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return New(d.year, d.month, d.day+n)
}

// AddMonths returns d shifted by n months. The day is clamped to the last day
// of the target month, so January 31 plus one month is February 28 or 29.
func (d Date) AddMonths(n int) Date {
	first := New(d.year, d.month+time.Month(n), 1)
	return New(first.year, first.month, min(d.day, first.DaysInMonth()))
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return Date{year: d.year, month: d.month, day: 1}
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date {
	return Date{year: d.year, month: d.month, day: d.DaysInMonth()}
}

// DaysInMonth returns the number of days in d's month.
func (d Date) DaysInMonth() int {
	return int(datetime.DaysInMonth(d.year, datetime.Month(d.month)))
}

// SameMonth reports whether d and other fall in the same month of the same year.
func (d Date) SameMonth(other Date) bool {
	return d.year == other.year && d.month == other.month
}

// DaysUntil returns the signed number of days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

// String returns the ISO calendar-day form, YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// Parse parses an ISO calendar day. Surrounding whitespace is ignored.
func Parse(value string) (Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Date{}, fmt.Errorf("empty value: %w", ErrInvalidDate)
	}
	t, err := time.Parse(ISOLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("%q: %w", value, ErrInvalidDate)
	}
	return FromTime(t), nil
}

// ParseValue parses value and reports false for anything Parse rejects. It is
// the form used for committed values, where bad input simply means "unset".
func ParseValue(value string) (Date, bool) {
	d, err := Parse(value)
	if err != nil {
		return Date{}, false
	}
	return d, true
}

// Format returns the ISO form of d, or "" for the zero date.
func Format(d Date) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}
