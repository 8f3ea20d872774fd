package registration

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/dvigun/beerbot/internal/services/registration Service

// Conversation states used by this machine. The handler routes free-text
// messages here based on the stored state.
const (
	StateAwaitingName      = "registration:awaiting_name"
	StateAwaitingBirthDate = "registration:awaiting_birth_date"
)

// Service walks a new user through registration. Entry requires a
// deep-link payload naming the sponsoring group chat.
type Service interface {
	// Start enters the machine for an unregistered user. Returns
	// ErrAlreadyRegistered or ErrSponsorNotAdmin without entering
	// any state
	Start(ctx context.Context, input *StartInput) error

	// SubmitName handles the AwaitingName step. ErrNameTooShort keeps
	// the state for a retry
	SubmitName(ctx context.Context, input *SubmitNameInput) error

	// SubmitBirthDate handles the AwaitingBirthDate step and completes
	// the registration. The sponsoring chat is re-validated here: its
	// admin row may have been revoked mid-conversation
	SubmitBirthDate(ctx context.Context, input *SubmitBirthDateInput) (*SubmitBirthDateOutput, error)
}
