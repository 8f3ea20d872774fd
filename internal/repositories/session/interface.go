package session

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/dvigun/beerbot/internal/repositories/session Store

// Store keeps per-conversation dialog state between updates. A
// conversation is keyed by the chat the bot talks to the user in,
// which for private chats equals the user ID.
type Store interface {
	// GetState returns the current dialog state, or an empty string
	// when the conversation has none
	GetState(ctx context.Context, chatID int64) (string, error)

	// SetState replaces the dialog state
	SetState(ctx context.Context, chatID int64, state string) error

	// GetData returns all data fields collected so far
	GetData(ctx context.Context, chatID int64) (map[string]string, error)

	// UpdateData merges the given fields into the conversation data
	UpdateData(ctx context.Context, chatID int64, fields map[string]string) error

	// Clear removes the state and all data for the conversation
	Clear(ctx context.Context, chatID int64) error
}
