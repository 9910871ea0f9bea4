package domain

import (
	"time"
)

// eventDateLayout matches the PostgREST serialization of a date column.
const eventDateLayout = "2006-01-02"

// Event is a public event row. Rows are managed out-of-band; this service
// only ever reads them, and only rows with Active set participate in
// listings and lookups.
type Event struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Active      bool   `json:"active"`
}

// DateValue parses the event date. PostgREST emits plain dates but timestamp
// columns come back as RFC 3339, so both layouts are accepted.
func (e *Event) DateValue() (time.Time, error) {
	if t, err := time.Parse(eventDateLayout, e.Date); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, e.Date)
}

// IsUpcoming reports whether the event falls on or after the given day.
// Events with an unparseable date are treated as past.
func (e *Event) IsUpcoming(today time.Time) bool {
	d, err := e.DateValue()
	if err != nil {
		return false
	}
	return !d.Before(today)
}

// EventList is the partitioned events listing. Both slices are always
// non-nil so empty partitions serialize as [] rather than null.
type EventList struct {
	Upcoming []Event `json:"upcoming"`
	Past     []Event `json:"past"`
}

// EventSponsorship is a sponsorship tier attached to one event, listed in
// descending price order.
type EventSponsorship struct {
	ID          int64   `json:"id"`
	EventID     int64   `json:"event_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// EventDetail carries an event together with its sponsorship tiers.
type EventDetail struct {
	Event        Event              `json:"event"`
	Sponsorships []EventSponsorship `json:"sponsorships"`
}

// Today truncates now to the start of its UTC day, the reference point for
// partitioning events into upcoming and past. Event dates parse as UTC
// midnight, so the comparison stays on one clock.
func Today(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
