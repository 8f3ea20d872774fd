package membership

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/dvigun/beerbot/internal/services/membership Service
//go:generate mockgen -package=mocks -destination=mocks/mock_transport.go github.com/dvigun/beerbot/internal/services/membership Transport

// Chat member statuses as reported by the platform
const (
	StatusCreator       = "creator"
	StatusAdministrator = "administrator"
	StatusMember        = "member"
	StatusLeft          = "left"
	StatusKicked        = "kicked"
)

// Action classifies what a membership change amounted to
type Action string

const (
	// ActionNone means the change was ignored
	ActionNone Action = "none"

	// ActionPromoted means the bot gained admin rights in the chat
	ActionPromoted Action = "promoted"

	// ActionDemoted means the bot lost admin rights in the chat
	ActionDemoted Action = "demoted"
)

// Transport is the live chat-platform lookup the tracker verifies
// actors against
type Transport interface {
	// GetChatMember returns the current status of a user in a chat
	GetChatMember(ctx context.Context, chatID, userID int64) (string, error)
}

// Service reacts to chat-membership changes about the bot itself and
// keeps the GroupAdmin records in step
type Service interface {
	// HandleChange processes one membership change notification
	HandleChange(ctx context.Context, input *ChangeInput) (*ChangeOutput, error)
}
