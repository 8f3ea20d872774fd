package telegram

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/dvigun/beerbot/internal/models"
)

// Callback data carried by inline buttons
const (
	callbackCancelEventCreation = "cancel_event_creation"
	callbackBeerChoiceYes       = "choice_yes"
	callbackBeerChoiceNo        = "choice_no"
	callbackNotifyImmediate     = "notify_immediate"
	callbackNotifyDelayed       = "notify_delayed"

	callbackSelectEventPrefix = "select_event_"
	callbackBeerPrefix        = "beer_"
)

// cancelKeyboard is attached to every event wizard prompt
func cancelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Отменить", callbackCancelEventCreation),
		),
	)
}

// beerChoiceKeyboard toggles the two-option drink choice
func beerChoiceKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Да", callbackBeerChoiceYes),
			tgbotapi.NewInlineKeyboardButtonData("Нет", callbackBeerChoiceNo),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Отменить", callbackCancelEventCreation),
		),
	)
}

// notifyChoiceKeyboard picks between immediate and scheduled notification
func notifyChoiceKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Отправить сейчас", callbackNotifyImmediate),
			tgbotapi.NewInlineKeyboardButtonData("Запланировать", callbackNotifyDelayed),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Отменить", callbackCancelEventCreation),
		),
	)
}

// eventListKeyboard lists events open for selection, one button per event
func eventListKeyboard(events []*models.Event, tz *time.Location) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(events))
	for _, event := range events {
		label := fmt.Sprintf("%s — %s", event.Name, event.StartsAt(tz).Format("02.01 15:04"))
		data := fmt.Sprintf("%s%d", callbackSelectEventPrefix, event.ID)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, data),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// beerOptionsKeyboard lists the selectable drink labels
func beerOptionsKeyboard(options []string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(options))
	for _, option := range options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option, callbackBeerPrefix+option),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// registrationLinkKeyboard opens a private chat with the registration payload
func registrationLinkKeyboard(link string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("Зарегистрироваться", link),
		),
	)
}

// locationRequestKeyboard asks the client to attach the user's location
func locationRequestKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonLocation("Отправить мою локацию"),
		),
	)
	keyboard.OneTimeKeyboard = true
	return keyboard
}
