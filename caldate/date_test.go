package caldate

import (
	"errors"
	"testing"
	"time"
)

func TestNewNormalizes(t *testing.T) {
	if got, want := New(2022, time.January, 32), New(2022, time.February, 1); got != want {
		t.Fatalf("New(2022-01-32) = %v, want %v", got, want)
	}
	if got := New(2022, time.March, 0); got.String() != "2022-02-28" {
		t.Fatalf("New(2022-03-00) = %v, want 2022-02-28", got)
	}
}

func TestAddMonthsClamps(t *testing.T) {
	tests := []struct {
		from  Date
		delta int
		want  string
	}{
		{New(2022, time.January, 31), 1, "2022-02-28"},
		{New(2024, time.January, 31), 1, "2024-02-29"},
		{New(2022, time.March, 31), -1, "2022-02-28"},
		{New(2022, time.December, 15), 1, "2023-01-15"},
		{New(2022, time.January, 15), -1, "2021-12-15"},
		{New(2022, time.May, 10), 12, "2023-05-10"},
	}
	for _, tt := range tests {
		if got := tt.from.AddMonths(tt.delta); got.String() != tt.want {
			t.Errorf("%v.AddMonths(%d) = %v, want %v", tt.from, tt.delta, got, tt.want)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	d := New(2024, time.February, 10)
	if got := d.StartOfMonth().String(); got != "2024-02-01" {
		t.Errorf("StartOfMonth = %v", got)
	}
	if got := d.EndOfMonth().String(); got != "2024-02-29" {
		t.Errorf("EndOfMonth = %v", got)
	}
	if got := New(2023, time.February, 1).DaysInMonth(); got != 28 {
		t.Errorf("DaysInMonth(2023-02) = %d", got)
	}
	if !d.SameMonth(New(2024, time.February, 29)) || d.SameMonth(New(2023, time.February, 10)) {
		t.Errorf("SameMonth mismatch")
	}
}

func TestCompareAndDaysUntil(t *testing.T) {
	a, b := New(2021, time.December, 31), New(2022, time.January, 2)
	if !a.Before(b) || !b.After(a) || a.Compare(a) != 0 {
		t.Fatalf("ordering broken for %v and %v", a, b)
	}
	if got := a.DaysUntil(b); got != 2 {
		t.Fatalf("DaysUntil = %d, want 2", got)
	}
	if got := b.DaysUntil(a); got != -2 {
		t.Fatalf("DaysUntil = %d, want -2", got)
	}
}

func TestParse(t *testing.T) {
	d, err := Parse(" 2022-01-01 ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d != New(2022, time.January, 1) || d.Weekday() != time.Saturday {
		t.Fatalf("Parse = %v (%v)", d, d.Weekday())
	}
	for _, bad := range []string{"", "2022-13-01", "2022-02-30", "01/02/2022", "yesterday"} {
		if _, err := Parse(bad); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Parse(%q) err = %v, want ErrInvalidDate", bad, err)
		}
		if _, ok := ParseValue(bad); ok {
			t.Errorf("ParseValue(%q) ok", bad)
		}
	}
}

func TestFormatZero(t *testing.T) {
	if got := Format(Date{}); got != "" {
		t.Fatalf("Format(zero) = %q", got)
	}
	if got := Format(New(2022, time.January, 15)); got != "2022-01-15" {
		t.Fatalf("Format = %q", got)
	}
}
