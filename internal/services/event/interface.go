package event

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/dvigun/beerbot/internal/services/event Service

// Conversation states used by the creation wizard. The handler routes
// inbound messages here based on the stored state.
const (
	StateAwaitingName         = "event:awaiting_name"
	StateAwaitingDate         = "event:awaiting_date"
	StateAwaitingTime         = "event:awaiting_time"
	StateAwaitingLocation     = "event:awaiting_location"
	StateAwaitingLocationName = "event:awaiting_location_name"
	StateAwaitingDescription  = "event:awaiting_description"
	StateAwaitingImage        = "event:awaiting_image"
	StateAwaitingBeerChoice   = "event:awaiting_beer_choice"
	StateAwaitingBeerOptions  = "event:awaiting_beer_options"
	StateAwaitingNotifyChoice = "event:awaiting_notify_choice"
	StateAwaitingNotifyTime   = "event:awaiting_notify_time"
)

// Service walks a group admin through event creation, one validated
// field per step. Validation failures keep the current state so the
// admin can retry; Cancel is available from every state.
type Service interface {
	// Start enters the wizard. The user must hold an admin record;
	// otherwise ErrNotGroupAdmin
	Start(ctx context.Context, input *StartInput) error

	// Cancel aborts the wizard from any state
	Cancel(ctx context.Context, input *CancelInput) error

	// SubmitName handles the AwaitingName step
	SubmitName(ctx context.Context, input *SubmitTextInput) error

	// SubmitDate handles the AwaitingDate step, strict DD.MM.YYYY not
	// before today in the bot timezone
	SubmitDate(ctx context.Context, input *SubmitTextInput) error

	// SubmitTime handles the AwaitingTime step, strict HH:MM
	SubmitTime(ctx context.Context, input *SubmitTextInput) error

	// SubmitLocation handles the AwaitingLocation step, "lat,lon" or a
	// skip token. Skipping disables geofence checks for the event
	SubmitLocation(ctx context.Context, input *SubmitTextInput) error

	// SubmitLocationName handles the AwaitingLocationName step
	SubmitLocationName(ctx context.Context, input *SubmitTextInput) error

	// SubmitDescription handles the AwaitingDescription step
	SubmitDescription(ctx context.Context, input *SubmitTextInput) error

	// SubmitImage handles the AwaitingImage step, an attached image or
	// a skip token
	SubmitImage(ctx context.Context, input *SubmitImageInput) error

	// SetBeerChoice handles the AwaitingBeerChoice toggle
	SetBeerChoice(ctx context.Context, input *SetBeerChoiceInput) error

	// SubmitBeerOptions handles the AwaitingBeerOptions step, exactly
	// two comma-separated options
	SubmitBeerOptions(ctx context.Context, input *SubmitTextInput) error

	// SetNotificationChoice handles the AwaitingNotifyChoice toggle.
	// Immediate finalizes the event; scheduled returns a nil output and
	// moves to AwaitingNotifyTime
	SetNotificationChoice(ctx context.Context, input *SetNotificationChoiceInput) (*FinalizeOutput, error)

	// SubmitNotifyTime handles the AwaitingNotifyTime step, a strictly
	// future "DD.MM.YYYY HH:MM", then finalizes the event
	SubmitNotifyTime(ctx context.Context, input *SubmitTextInput) (*FinalizeOutput, error)
}
