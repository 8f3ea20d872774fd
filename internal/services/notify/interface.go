package notify

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/dvigun/beerbot/internal/services/notify Service

// Service composes and delivers event notifications
type Service interface {
	// NotifyParticipants fans an event announcement out to every user
	// registered through the event's chat. Per-recipient send failures
	// are counted, never raised
	NotifyParticipants(ctx context.Context, input *NotifyParticipantsInput) (*NotifyParticipantsOutput, error)

	// BartenderSummary aggregates the event's selections and sends one
	// summary to the bartender chat. Duplicate job deliveries send at
	// most one summary
	BartenderSummary(ctx context.Context, input *BartenderSummaryInput) error
}
