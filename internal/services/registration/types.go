package registration

import (
	"github.com/dvigun/beerbot/internal/models"
)

// StartInput contains parameters for entering the registration machine
type StartInput struct {
	// UserID is the Telegram user registering
	UserID int64

	// Username is the Telegram handle, may be empty
	Username string

	// GroupID is the sponsoring chat from the deep-link payload
	GroupID int64
}

// SubmitNameInput contains the AwaitingName step input
type SubmitNameInput struct {
	// UserID is the Telegram user registering
	UserID int64

	// Name is the free-text display name
	Name string
}

// SubmitBirthDateInput contains the AwaitingBirthDate step input
type SubmitBirthDateInput struct {
	// UserID is the Telegram user registering
	UserID int64

	// Text is a skip token, "DD.MM" or "DD.MM.YYYY"
	Text string
}

// SubmitBirthDateOutput contains the completed registration
type SubmitBirthDateOutput struct {
	// User is the stored record
	User *models.User
}
