package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/dvigun/beerbot/internal/services/notify"
)

// apiTransport adapts the Bot API client to the transport interfaces the
// services depend on.
type apiTransport struct {
	api *tgbotapi.BotAPI
}

// NewTransport wraps a Bot API client
func NewTransport(api *tgbotapi.BotAPI) (*apiTransport, error) {
	if api == nil {
		return nil, errors.New("api client cannot be nil")
	}

	return &apiTransport{api: api}, nil
}

// Send delivers one outbound message, as a photo when a file ID is attached
func (t *apiTransport) Send(ctx context.Context, msg *notify.Message) error {
	if msg == nil {
		return errors.New("message cannot be nil")
	}

	markup := inlineMarkup(msg.Keyboard)

	if msg.ImageFileID != "" {
		photo := tgbotapi.NewPhotoShare(msg.ChatID, msg.ImageFileID)
		photo.Caption = msg.Text
		if markup != nil {
			photo.ReplyMarkup = *markup
		}

		if _, err := t.api.Send(photo); err != nil {
			return fmt.Errorf("failed to send photo to chat %d: %w", msg.ChatID, err)
		}
		return nil
	}

	message := tgbotapi.NewMessage(msg.ChatID, msg.Text)
	if markup != nil {
		message.ReplyMarkup = *markup
	}

	if _, err := t.api.Send(message); err != nil {
		return fmt.Errorf("failed to send message to chat %d: %w", msg.ChatID, err)
	}

	return nil
}

// GetChatMember looks up a user's current status in a chat
func (t *apiTransport) GetChatMember(ctx context.Context, chatID, userID int64) (string, error) {
	member, err := t.api.GetChatMember(tgbotapi.ChatConfigWithUser{
		ChatID: chatID,
		UserID: int(userID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get chat member %d in chat %d: %w", userID, chatID, err)
	}

	return member.Status, nil
}

// inlineMarkup converts the row-major button layout to an inline keyboard.
// Returns nil when there are no buttons.
func inlineMarkup(keyboard [][]notify.Button) *tgbotapi.InlineKeyboardMarkup {
	if len(keyboard) == 0 {
		return nil
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(keyboard))
	for _, row := range keyboard {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.CallbackData))
		}
		rows = append(rows, buttons)
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}
