package models

import (
	"time"
)

// BirthYearUnknown is the sentinel year stored when a user gave only a
// day and month during registration.
const BirthYearUnknown = 1900

// User represents a member registered through a sponsoring group chat
type User struct {
	// TelegramID is the Telegram user ID of the member
	TelegramID int64

	// Username is the Telegram handle, may be empty
	Username string

	// Name is the display name collected during registration
	Name string

	// BirthDate is optional; a year of BirthYearUnknown means only
	// day and month are known
	BirthDate *time.Time

	// RegisteredFromGroupID is the chat that sponsored the registration
	RegisteredFromGroupID int64

	// CreatedAt is when the registration completed
	CreatedAt time.Time
}
