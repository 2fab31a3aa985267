package domain

import "time"

// Event is a community event listed on the public agenda.
type Event struct {
	ID          string
	Title       string
	Description string
	Date        string // calendar date, e.g. 2025-01-01
	Time        string // time of day, e.g. 18:00
	Place       string
	CreatedBy   string // owning user id; empty when unknown
	CreatedAt   time.Time

	// Creator is resolved on listing only.
	Creator *Creator
}

// Before orders events soonest first by (date, time).
func (e *Event) Before(other *Event) bool {
	if e.Date != other.Date {
		return e.Date < other.Date
	}
	return e.Time < other.Time
}
