package event

import (
	"context"

	"github.com/dvigun/beerbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/dvigun/beerbot/internal/repositories/event Repository

// Repository defines the interface for event data persistence
type Repository interface {
	// Create persists a new event and returns it with its assigned ID
	Create(ctx context.Context, input *CreateInput) (*models.Event, error)

	// Get retrieves an event by ID
	Get(ctx context.Context, input *GetInput) (*models.Event, error)

	// ListUpcoming retrieves events dated on or after the given day
	ListUpcoming(ctx context.Context, input *ListUpcomingInput) (*ListUpcomingOutput, error)

	// SetJobIDs attaches scheduler job handles to an event
	SetJobIDs(ctx context.Context, input *SetJobIDsInput) error

	// MarkBartenderSent atomically flags the bartender summary as sent,
	// reporting whether another delivery got there first
	MarkBartenderSent(ctx context.Context, input *MarkBartenderSentInput) (*MarkBartenderSentOutput, error)
}
