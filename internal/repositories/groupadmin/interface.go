package groupadmin

import (
	"context"

	"github.com/dvigun/beerbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/dvigun/beerbot/internal/repositories/groupadmin Repository

// Repository defines the interface for group admin persistence
type Repository interface {
	// CreateOrGet persists an admin record, returning the existing row
	// when the chat already has one (duplicate promotion delivery)
	CreateOrGet(ctx context.Context, input *CreateOrGetInput) (*CreateOrGetOutput, error)

	// GetByChatID retrieves the admin record for a chat
	GetByChatID(ctx context.Context, input *GetByChatIDInput) (*models.GroupAdmin, error)

	// GetByUserID retrieves all admin records created by a user
	GetByUserID(ctx context.Context, input *GetByUserIDInput) (*GetByUserIDOutput, error)

	// Delete removes the admin record for a chat
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}
