package core

import (
	"testing"
	"time"
)

func TestMonthGrid(t *testing.T) {
	// January 2022 starts on a Saturday and has 31 days.
	grid := MonthGrid(date(2022, time.January, 15), time.Monday)
	if len(grid) != 6 {
		t.Fatalf("weeks = %d, want 6", len(grid))
	}
	if first := grid[0][0]; first.Date != date(2021, time.December, 27) || first.InMonth {
		t.Fatalf("first cell = %+v", first)
	}
	if cell := grid[0][5]; cell.Date != date(2022, time.January, 1) || !cell.InMonth {
		t.Fatalf("jan 1 cell = %+v", cell)
	}
	last := grid[len(grid)-1]
	if last[0].Date != date(2022, time.January, 31) || last[6].InMonth {
		t.Fatalf("last week = %+v", last)
	}

	sundayGrid := MonthGrid(date(2022, time.January, 1), time.Sunday)
	if sundayGrid[0][6].Date != date(2022, time.January, 1) {
		t.Fatalf("sunday-first jan 1 should be last column, got %+v", sundayGrid[0])
	}
}

func TestMonthGridExactWeeks(t *testing.T) {
	// February 2021 starts on a Monday and fills exactly four weeks.
	grid := MonthGrid(date(2021, time.February, 1), time.Monday)
	if len(grid) != 4 {
		t.Fatalf("weeks = %d, want 4", len(grid))
	}
	for _, week := range grid {
		for _, cell := range week {
			if !cell.InMonth {
				t.Fatalf("unexpected outside cell %v", cell.Date)
			}
		}
	}
}

func TestWeekdayOrder(t *testing.T) {
	got := WeekdayOrder(time.Saturday)
	if got[0] != time.Saturday || got[1] != time.Sunday || got[6] != time.Friday {
		t.Fatalf("order = %v", got)
	}
}
