package user

import (
	"github.com/dvigun/beerbot/internal/models"
)

// CreateOrGetInput contains parameters for creating a user
type CreateOrGetInput struct {
	// User is the record to persist
	User *models.User
}

// CreateOrGetOutput contains the result of an idempotent user creation
type CreateOrGetOutput struct {
	// User is the stored record
	User *models.User

	// AlreadyExisted indicates the user had been created before and the
	// existing record was returned
	AlreadyExisted bool
}

// GetByTelegramIDInput contains parameters for fetching a user
type GetByTelegramIDInput struct {
	// TelegramID is the Telegram user ID
	TelegramID int64
}

// ListByGroupIDInput contains parameters for listing users by sponsor chat
type ListByGroupIDInput struct {
	// GroupID is the sponsoring chat ID
	GroupID int64
}

// ListByGroupIDOutput contains the users sponsored by a chat
type ListByGroupIDOutput struct {
	// Users are the matching records
	Users []*models.User
}
