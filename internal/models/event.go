package models

import (
	"time"
)

// Event represents a scheduled gathering created by a group admin
type Event struct {
	// ID is the unique identifier for the event
	ID int64

	// Name is the event title
	Name string

	// EventDate is the calendar date of the event (midnight, bot timezone)
	EventDate time.Time

	// EventTime is the start time in "HH:MM" form
	EventTime string

	// Latitude and Longitude are optional; when nil the event has no
	// physical location and geofence checks are skipped
	Latitude  *float64
	Longitude *float64

	// LocationName is an optional human-readable place name
	LocationName string

	// Description is optional free text
	Description string

	// ImageFileID is an optional Telegram file ID for the event image
	ImageFileID string

	// HasBeerChoice indicates whether the event offers two drink options
	HasBeerChoice bool

	// BeerOption1 and BeerOption2 are the configured options; when
	// HasBeerChoice is false BeerOption1 holds the default label
	BeerOption1 string
	BeerOption2 string

	// CreatedBy is the Telegram user ID of the creator
	CreatedBy int64

	// ChatID is the sponsoring group chat
	ChatID int64

	// UserNotifyJobID and BartenderJobID are scheduler handles, persisted
	// best-effort after the jobs are submitted
	UserNotifyJobID string
	BartenderJobID  string

	// BartenderSent guards the bartender summary against duplicate
	// job deliveries
	BartenderSent bool

	// CreatedAt is when the event row was persisted
	CreatedAt time.Time
}

// HasLocation reports whether the event carries coordinates.
func (e *Event) HasLocation() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// StartsAt combines the event date and time in the given timezone.
func (e *Event) StartsAt(loc *time.Location) time.Time {
	t, err := time.Parse("15:04", e.EventTime)
	if err != nil {
		return time.Time{}
	}
	return time.Date(e.EventDate.Year(), e.EventDate.Month(), e.EventDate.Day(),
		t.Hour(), t.Minute(), 0, 0, loc)
}

// BeerOptions returns the selectable labels for the event. Events without
// a configured choice expose the single default label.
func (e *Event) BeerOptions(defaultLabel string) []string {
	if e.HasBeerChoice {
		return []string{e.BeerOption1, e.BeerOption2}
	}
	if e.BeerOption1 != "" {
		return []string{e.BeerOption1}
	}
	return []string{defaultLabel}
}
