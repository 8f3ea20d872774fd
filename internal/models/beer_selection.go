package models

import (
	"time"
)

// BeerSelection is one user's drink choice for one event. Unique on
// (UserID, EventID); the storage layer enforces the constraint.
type BeerSelection struct {
	// ID is the unique identifier for the selection
	ID int64

	// UserID is the Telegram user who made the choice
	UserID int64

	// EventID is the event the choice belongs to
	EventID int64

	// ChatID is the group chat owning the event
	ChatID int64

	// BeerChoice is the chosen label
	BeerChoice string

	// CreatedAt is when the selection was recorded
	CreatedAt time.Time
}
