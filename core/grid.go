package core

import (
	"time"

	"github.com/jask/datefocus/caldate"
)

// GridDay is one cell of a month grid.
type GridDay struct {
	Date    caldate.Date
	InMonth bool
}

// MonthGrid lays out month as whole weeks beginning on startOfWeek. Leading
// and trailing cells from adjacent months have InMonth unset.
func MonthGrid(month caldate.Date, startOfWeek time.Weekday) [][]GridDay {
	first := month.StartOfMonth()
	lead := (int(first.Weekday()) - int(startOfWeek) + 7) % 7
	cells := lead + first.DaysInMonth()
	weeks := (cells + 6) / 7

	out := make([][]GridDay, 0, weeks)
	d := first.AddDays(-lead)
	for w := 0; w < weeks; w++ {
		row := make([]GridDay, 7)
		for i := range row {
			row[i] = GridDay{Date: d, InMonth: d.SameMonth(first)}
			d = d.AddDays(1)
		}
		out = append(out, row)
	}
	return out
}

// WeekdayOrder returns the seven weekdays in display order.
func WeekdayOrder(startOfWeek time.Weekday) []time.Weekday {
	out := make([]time.Weekday, 7)
	for i := range out {
		out[i] = (startOfWeek + time.Weekday(i)) % 7
	}
	return out
}
