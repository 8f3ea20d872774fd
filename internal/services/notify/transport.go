package notify

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_transport.go github.com/dvigun/beerbot/internal/services/notify Transport

// Button is one inline keyboard button
type Button struct {
	// Label is the visible text
	Label string

	// CallbackData is delivered back when the button is pressed
	CallbackData string
}

// Message is a platform-agnostic outbound message
type Message struct {
	// ChatID is the recipient chat
	ChatID int64

	// Text is the message body, or the caption when ImageFileID is set
	Text string

	// ImageFileID is an optional platform file ID to attach
	ImageFileID string

	// Keyboard is an optional inline keyboard, row major
	Keyboard [][]Button
}

// Transport delivers messages to the chat platform
type Transport interface {
	// Send delivers one message
	Send(ctx context.Context, msg *Message) error
}
