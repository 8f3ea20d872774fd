package user

import (
	"context"

	"github.com/dvigun/beerbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/dvigun/beerbot/internal/repositories/user Repository

// Repository defines the interface for user data persistence
type Repository interface {
	// CreateOrGet persists a user, returning the existing record when a
	// user with the same Telegram ID has already been created
	CreateOrGet(ctx context.Context, input *CreateOrGetInput) (*CreateOrGetOutput, error)

	// GetByTelegramID retrieves a user by Telegram ID
	GetByTelegramID(ctx context.Context, input *GetByTelegramIDInput) (*models.User, error)

	// ListByGroupID retrieves all users sponsored by a group chat
	ListByGroupID(ctx context.Context, input *ListByGroupIDInput) (*ListByGroupIDOutput, error)
}
