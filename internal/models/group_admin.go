package models

import (
	"time"
)

// GroupAdmin records that the bot holds admin rights in a chat. One row
// per chat: the chat ID is the primary key, so only the most recent
// promotion is remembered.
type GroupAdmin struct {
	// ChatID is the managed group chat
	ChatID int64

	// UserID is the Telegram user who promoted the bot
	UserID int64

	// CreatedAt is when the promotion was recorded
	CreatedAt time.Time
}
