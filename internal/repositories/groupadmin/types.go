package groupadmin

import (
	"github.com/dvigun/beerbot/internal/models"
)

// CreateOrGetInput contains parameters for creating an admin record
type CreateOrGetInput struct {
	// Admin is the record to persist
	Admin *models.GroupAdmin
}

// CreateOrGetOutput contains the result of an idempotent creation
type CreateOrGetOutput struct {
	// Admin is the stored record
	Admin *models.GroupAdmin

	// AlreadyExisted indicates the chat already had an admin record
	AlreadyExisted bool
}

// GetByChatIDInput contains parameters for fetching an admin record
type GetByChatIDInput struct {
	// ChatID is the managed chat
	ChatID int64
}

// GetByUserIDInput contains parameters for listing a user's admin records
type GetByUserIDInput struct {
	// UserID is the promoting Telegram user
	UserID int64
}

// GetByUserIDOutput contains the admin records for a user
type GetByUserIDOutput struct {
	// Admins are the matching records
	Admins []*models.GroupAdmin
}

// DeleteInput contains parameters for removing an admin record
type DeleteInput struct {
	// ChatID is the managed chat
	ChatID int64
}

// DeleteOutput contains the result of a deletion
type DeleteOutput struct {
	// Deleted indicates a row was actually removed
	Deleted bool
}
