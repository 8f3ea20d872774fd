package beerselection

import (
	"time"

	"github.com/dvigun/beerbot/internal/models"
)

// CreateOrGetInput contains parameters for recording a selection
type CreateOrGetInput struct {
	// Selection is the record to persist; its ID is assigned by the store
	Selection *models.BeerSelection
}

// CreateOrGetOutput contains the result of an idempotent creation
type CreateOrGetOutput struct {
	// Selection is the stored record
	Selection *models.BeerSelection

	// AlreadyExisted indicates the (user, event) pair already had a row
	AlreadyExisted bool
}

// GetByUserAndEventInput contains parameters for fetching a selection
type GetByUserAndEventInput struct {
	// UserID is the Telegram user
	UserID int64

	// EventID is the event
	EventID int64
}

// CountByChoiceInput contains parameters for aggregating selections
type CountByChoiceInput struct {
	// EventID is the event
	EventID int64

	// From and To bound the selection timestamps; zero values disable
	// the corresponding bound
	From time.Time
	To   time.Time
}

// CountByChoiceOutput contains per-label counts for an event
type CountByChoiceOutput struct {
	// Counts maps each chosen label to its number of selections
	Counts map[string]int

	// Participants is the number of distinct users with a selection
	Participants int
}
