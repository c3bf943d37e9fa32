package repository

import "time"

// Commit is one value committed from the calendar.
type Commit struct {
	ID          string
	Value       string
	Locale      string
	CommittedAt time.Time
}
