package event

import (
	"github.com/dvigun/beerbot/internal/models"
)

// StartInput contains parameters for entering the wizard
type StartInput struct {
	// UserID is the Telegram user creating the event
	UserID int64
}

// CancelInput contains parameters for aborting the wizard
type CancelInput struct {
	// UserID is the Telegram user cancelling
	UserID int64
}

// SubmitTextInput carries one free-text wizard answer
type SubmitTextInput struct {
	// UserID is the Telegram user in the wizard
	UserID int64

	// Text is the raw answer
	Text string
}

// SubmitImageInput contains the AwaitingImage step input
type SubmitImageInput struct {
	// UserID is the Telegram user in the wizard
	UserID int64

	// FileID is the attached image's platform file ID, empty when the
	// message carried no image
	FileID string

	// Text is the message text, checked for a skip token when FileID
	// is empty
	Text string
}

// SetBeerChoiceInput contains the beer-choice toggle
type SetBeerChoiceInput struct {
	// UserID is the Telegram user in the wizard
	UserID int64

	// HasChoice enables the two-option drink choice
	HasChoice bool
}

// SetNotificationChoiceInput contains the notification-timing toggle
type SetNotificationChoiceInput struct {
	// UserID is the Telegram user in the wizard
	UserID int64

	// Immediate sends the participant notification right away instead
	// of scheduling it
	Immediate bool
}

// FinalizeOutput contains the result of a completed creation
type FinalizeOutput struct {
	// Event is the persisted record
	Event *models.Event

	// Sent and Failed tally the immediate participant notification;
	// both are zero when the notification was scheduled
	Sent   int
	Failed int

	// Scheduled indicates the participant notification was deferred to
	// a job instead of sent immediately
	Scheduled bool
}
