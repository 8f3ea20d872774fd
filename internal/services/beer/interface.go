package beer

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/dvigun/beerbot/internal/services/beer Service

// Conversation states used by the selection machine
const (
	StateAwaitingLocation = "beer:awaiting_location"
	StateAwaitingChoice   = "beer:awaiting_choice"
)

// Service lets a registered user record one drink choice for an
// upcoming event, gated by the selection time window and, for events
// with coordinates, by the geofence.
type Service interface {
	// Start lists the events still open for selection. Requires a
	// registered user, otherwise ErrNotRegistered
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// SelectEvent picks an event from the list. An existing selection
	// short-circuits to its choice; outside the selection window the
	// state is cleared with ErrTooLate
	SelectEvent(ctx context.Context, input *SelectEventInput) (*SelectEventOutput, error)

	// SubmitLocation checks the user's location against the event
	// geofence. ErrTooFar keeps the state so the user can retry
	SubmitLocation(ctx context.Context, input *SubmitLocationInput) (*SubmitLocationOutput, error)

	// SelectBeer records the choice. A storage-level duplicate means a
	// concurrent request already recorded it and is reported as success
	SelectBeer(ctx context.Context, input *SelectBeerInput) (*SelectBeerOutput, error)
}
