package beerselection

import (
	"context"

	"github.com/dvigun/beerbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/dvigun/beerbot/internal/repositories/beerselection Repository

// Repository defines the interface for beer selection persistence
type Repository interface {
	// CreateOrGet persists a selection. The storage enforces uniqueness
	// on (user, event); a conflict returns the existing row so that a
	// concurrent duplicate attempt observes success
	CreateOrGet(ctx context.Context, input *CreateOrGetInput) (*CreateOrGetOutput, error)

	// GetByUserAndEvent retrieves a user's selection for an event
	GetByUserAndEvent(ctx context.Context, input *GetByUserAndEventInput) (*models.BeerSelection, error)

	// CountByChoice aggregates selections for an event by chosen label
	CountByChoice(ctx context.Context, input *CountByChoiceInput) (*CountByChoiceOutput, error)
}
