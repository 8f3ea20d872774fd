package beer

import (
	"github.com/dvigun/beerbot/internal/models"
)

// StartInput contains parameters for listing selectable events
type StartInput struct {
	// UserID is the Telegram user selecting a drink
	UserID int64
}

// StartOutput contains the events open for selection
type StartOutput struct {
	// Events start strictly in the future, ordered by start ascending
	Events []*models.Event
}

// SelectEventInput contains the picked event
type SelectEventInput struct {
	// UserID is the Telegram user selecting a drink
	UserID int64

	// EventID is the picked event
	EventID int64
}

// SelectEventOutput contains the next step after picking an event
type SelectEventOutput struct {
	// Event is the re-fetched record
	Event *models.Event

	// AlreadyChosen holds the existing choice when the user had one;
	// the machine was not entered in that case
	AlreadyChosen string

	// NeedLocation indicates the event has coordinates and the user
	// must confirm their location first
	NeedLocation bool

	// Options are the selectable labels, set when NeedLocation is false
	Options []string
}

// SubmitLocationInput contains the user's location attachment
type SubmitLocationInput struct {
	// UserID is the Telegram user selecting a drink
	UserID int64

	// Latitude and Longitude are the attached coordinates
	Latitude  float64
	Longitude float64
}

// SubmitLocationOutput contains the next step after a passed geofence
type SubmitLocationOutput struct {
	// Options are the selectable labels
	Options []string
}

// SelectBeerInput contains the chosen label
type SelectBeerInput struct {
	// UserID is the Telegram user selecting a drink
	UserID int64

	// Choice is the picked label
	Choice string
}

// SelectBeerOutput contains the recorded selection
type SelectBeerOutput struct {
	// Choice is the stored label; under a duplicate race this is the
	// winner's choice
	Choice string
}
