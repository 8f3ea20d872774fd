package event

import (
	"time"

	"github.com/dvigun/beerbot/internal/models"
)

// CreateInput contains parameters for creating an event
type CreateInput struct {
	// Event is the record to persist; its ID is assigned by the store
	Event *models.Event
}

// GetInput contains parameters for fetching an event
type GetInput struct {
	// EventID is the event identifier
	EventID int64
}

// ListUpcomingInput contains parameters for listing upcoming events
type ListUpcomingInput struct {
	// From bounds the listing: events dated before this day are excluded.
	// Same-day events that already started are filtered by the caller.
	From time.Time

	// Limit caps the number of returned events
	Limit int
}

// ListUpcomingOutput contains the upcoming events
type ListUpcomingOutput struct {
	// Events are ordered by date and time ascending
	Events []*models.Event
}

// SetJobIDsInput contains scheduler job handles to attach to an event
type SetJobIDsInput struct {
	// EventID is the event identifier
	EventID int64

	// UserNotifyJobID is the participant notification job, may be empty
	UserNotifyJobID string

	// BartenderJobID is the bartender summary job, may be empty
	BartenderJobID string
}

// MarkBartenderSentInput contains parameters for the sent-flag check-and-set
type MarkBartenderSentInput struct {
	// EventID is the event identifier
	EventID int64
}

// MarkBartenderSentOutput contains the result of the check-and-set
type MarkBartenderSentOutput struct {
	// AlreadySent indicates the flag was set by an earlier delivery
	AlreadySent bool
}
