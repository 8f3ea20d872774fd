package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/skip2/go-qrcode"

	sessionRepo "github.com/dvigun/beerbot/internal/repositories/session"
	userRepo "github.com/dvigun/beerbot/internal/repositories/user"
	"github.com/dvigun/beerbot/internal/services/beer"
	"github.com/dvigun/beerbot/internal/services/event"
	"github.com/dvigun/beerbot/internal/services/membership"
	"github.com/dvigun/beerbot/internal/services/registration"
)

const deepLinkPrefix = "reg_"

// Bot routes Telegram updates to the conversation services
type Bot struct {
	api          *tgbotapi.BotAPI
	timezone     *time.Location
	registration registration.Service
	events       event.Service
	beers        beer.Service
	membership   membership.Service
	sessions     sessionRepo.Store
	userRepo     userRepo.Repository
}

// Config holds the configuration for the bot
type Config struct {
	// API is the authorized Bot API client
	API *tgbotapi.BotAPI

	// Timezone is the bot's display timezone
	Timezone *time.Location

	// Conversation services
	Registration  registration.Service
	EventCreation event.Service
	BeerSelection beer.Service
	Membership    membership.Service

	// Sessions is read to route free-form messages to the right machine
	Sessions sessionRepo.Store

	// UserRepo answers the "already registered" check on group /start
	UserRepo userRepo.Repository
}

// New creates a new Telegram bot handler
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.API == nil {
		return nil, errors.New("api client cannot be nil")
	}

	if cfg.Timezone == nil {
		return nil, errors.New("timezone cannot be nil")
	}

	if cfg.Registration == nil {
		return nil, errors.New("registration service cannot be nil")
	}

	if cfg.EventCreation == nil {
		return nil, errors.New("event creation service cannot be nil")
	}

	if cfg.BeerSelection == nil {
		return nil, errors.New("beer selection service cannot be nil")
	}

	if cfg.Membership == nil {
		return nil, errors.New("membership service cannot be nil")
	}

	if cfg.Sessions == nil {
		return nil, errors.New("session store cannot be nil")
	}

	if cfg.UserRepo == nil {
		return nil, errors.New("user repository cannot be nil")
	}

	return &Bot{
		api:          cfg.API,
		timezone:     cfg.Timezone,
		registration: cfg.Registration,
		events:       cfg.EventCreation,
		beers:        cfg.BeerSelection,
		membership:   cfg.Membership,
		sessions:     cfg.Sessions,
		userRepo:     cfg.UserRepo,
	}, nil
}

// Run polls for updates until the context is cancelled
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates, err := b.api.GetUpdatesChan(u)
	if err != nil {
		return fmt.Errorf("failed to start polling: %w", err)
	}

	log.Printf("telegram: authorized as @%s", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-updates:
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.NewChatMembers != nil || msg.LeftChatMember != nil {
		b.handleMembershipChange(ctx, msg)
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	if msg.Chat.IsPrivate() {
		b.handleDialog(ctx, msg)
	}
}

// handleCommand routes commands to corresponding handlers.
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		if msg.Chat.IsPrivate() {
			b.handlePrivateStart(ctx, msg)
		} else {
			b.handleGroupStart(ctx, msg)
		}
	case "create_event":
		b.handleCreateEvent(ctx, msg)
	case "beer":
		b.handleBeer(ctx, msg)
	default:
		if msg.Chat.IsPrivate() {
			b.send(msg.Chat.ID, textUnknownCommand)
		}
	}
}

// handleGroupStart replies with the registration deep link and its QR code,
// or a short notice when the user is already registered.
func (b *Bot) handleGroupStart(ctx context.Context, msg *tgbotapi.Message) {
	userID := int64(msg.From.ID)

	_, err := b.userRepo.GetByTelegramID(ctx, &userRepo.GetByTelegramIDInput{TelegramID: userID})
	if err == nil {
		b.send(msg.Chat.ID, textGroupAlreadyRegistered)
		return
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		log.Printf("telegram: failed to look up user %d: %v", userID, err)
		b.send(msg.Chat.ID, textSomethingWrong)
		return
	}

	link := fmt.Sprintf("https://t.me/%s?start=%s%d", b.api.Self.UserName, deepLinkPrefix, msg.Chat.ID)

	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		log.Printf("telegram: failed to generate QR code: %v", err)
		b.sendWithMarkup(msg.Chat.ID, textGroupRegisterInvite, registrationLinkKeyboard(link))
		return
	}

	photo := tgbotapi.NewPhotoUpload(msg.Chat.ID, tgbotapi.FileBytes{
		Name:  "registration.png",
		Bytes: png,
	})
	photo.Caption = textGroupRegisterInvite
	photo.ReplyMarkup = registrationLinkKeyboard(link)

	if _, err := b.api.Send(photo); err != nil {
		log.Printf("telegram: failed to send registration invite to chat %d: %v", msg.Chat.ID, err)
	}
}

// handlePrivateStart enters the registration machine when the command
// carries a deep-link payload.
func (b *Bot) handlePrivateStart(ctx context.Context, msg *tgbotapi.Message) {
	payload := msg.CommandArguments()
	if !strings.HasPrefix(payload, deepLinkPrefix) {
		b.send(msg.Chat.ID, textPrivateWelcome)
		return
	}

	groupID, err := strconv.ParseInt(strings.TrimPrefix(payload, deepLinkPrefix), 10, 64)
	if err != nil {
		b.send(msg.Chat.ID, textPrivateWelcome)
		return
	}

	err = b.registration.Start(ctx, &registration.StartInput{
		UserID:   int64(msg.From.ID),
		Username: msg.From.UserName,
		GroupID:  groupID,
	})
	if err != nil {
		b.send(msg.Chat.ID, registrationErrorText(err))
		return
	}

	b.send(msg.Chat.ID, textAskName)
}

func (b *Bot) handleCreateEvent(ctx context.Context, msg *tgbotapi.Message) {
	if !msg.Chat.IsPrivate() {
		b.send(msg.Chat.ID, textPrivateOnly)
		return
	}

	if err := b.events.Start(ctx, &event.StartInput{UserID: int64(msg.From.ID)}); err != nil {
		b.send(msg.Chat.ID, eventErrorText(err))
		return
	}

	b.sendWithMarkup(msg.Chat.ID, textAskEventName, cancelKeyboard())
}

func (b *Bot) handleBeer(ctx context.Context, msg *tgbotapi.Message) {
	if !msg.Chat.IsPrivate() {
		b.send(msg.Chat.ID, textPrivateOnly)
		return
	}

	out, err := b.beers.Start(ctx, &beer.StartInput{UserID: int64(msg.From.ID)})
	if err != nil {
		b.send(msg.Chat.ID, beerErrorText(err))
		return
	}

	if len(out.Events) == 0 {
		b.send(msg.Chat.ID, textNoEvents)
		return
	}

	b.sendWithMarkup(msg.Chat.ID, textPickEvent, eventListKeyboard(out.Events, b.timezone))
}

// handleDialog routes a free-form private message by the stored
// conversation state.
func (b *Bot) handleDialog(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := int64(msg.From.ID)

	state, err := b.sessions.GetState(ctx, chatID)
	if err != nil {
		log.Printf("telegram: failed to read state for chat %d: %v", chatID, err)
		// Abandon whatever conversation was in flight rather than leave
		// it half-readable
		if clearErr := b.sessions.Clear(ctx, chatID); clearErr != nil {
			log.Printf("telegram: failed to clear state for chat %d: %v", chatID, clearErr)
		}
		b.send(chatID, textSomethingWrong)
		return
	}

	switch state {
	case registration.StateAwaitingName:
		err := b.registration.SubmitName(ctx, &registration.SubmitNameInput{UserID: userID, Name: msg.Text})
		b.reply(chatID, err, registrationErrorText, textAskBirthDate)

	case registration.StateAwaitingBirthDate:
		out, err := b.registration.SubmitBirthDate(ctx, &registration.SubmitBirthDateInput{UserID: userID, Text: msg.Text})
		if err != nil {
			b.send(chatID, registrationErrorText(err))
			return
		}
		b.send(chatID, renderRegistrationDone(out.User))

	case event.StateAwaitingName:
		err := b.events.SubmitName(ctx, &event.SubmitTextInput{UserID: userID, Text: msg.Text})
		b.replyWizard(chatID, err, textAskEventDate)

	case event.StateAwaitingDate:
		err := b.events.SubmitDate(ctx, &event.SubmitTextInput{UserID: userID, Text: msg.Text})
		b.replyWizard(chatID, err, textAskEventTime)

	case event.StateAwaitingTime:
		err := b.events.SubmitTime(ctx, &event.SubmitTextInput{UserID: userID, Text: msg.Text})
		b.replyWizard(chatID, err, textAskLocation)

	case event.StateAwaitingLocation:
		text := msg.Text
		if msg.Location != nil {
			text = formatCoordinates(msg.Location.Latitude, msg.Location.Longitude)
		}
		err := b.events.SubmitLocation(ctx, &event.SubmitTextInput{UserID: userID, Text: text})
		b.replyWizard(chatID, err, textAskLocationName)

	case event.StateAwaitingLocationName:
		err := b.events.SubmitLocationName(ctx, &event.SubmitTextInput{UserID: userID, Text: msg.Text})
		b.replyWizard(chatID, err, textAskDescription)

	case event.StateAwaitingDescription:
		err := b.events.SubmitDescription(ctx, &event.SubmitTextInput{UserID: userID, Text: msg.Text})
		b.replyWizard(chatID, err, textAskImage)

	case event.StateAwaitingImage:
		text := msg.Text
		if text == "" {
			text = msg.Caption
		}
		err := b.events.SubmitImage(ctx, &event.SubmitImageInput{UserID: userID, FileID: largestPhotoID(msg), Text: text})
		if err != nil {
			b.send(chatID, eventErrorText(err))
			return
		}
		b.sendWithMarkup(chatID, textAskBeerChoice, beerChoiceKeyboard())

	case event.StateAwaitingBeerOptions:
		err := b.events.SubmitBeerOptions(ctx, &event.SubmitTextInput{UserID: userID, Text: msg.Text})
		if err != nil {
			b.send(chatID, eventErrorText(err))
			return
		}
		b.sendWithMarkup(chatID, textAskNotifyChoice, notifyChoiceKeyboard())

	case event.StateAwaitingNotifyTime:
		out, err := b.events.SubmitNotifyTime(ctx, &event.SubmitTextInput{UserID: userID, Text: msg.Text})
		if err != nil {
			b.send(chatID, eventErrorText(err))
			return
		}
		b.send(chatID, renderEventCreated(out, b.timezone))

	case event.StateAwaitingBeerChoice, event.StateAwaitingNotifyChoice, beer.StateAwaitingChoice:
		b.send(chatID, textUseButtons)

	case beer.StateAwaitingLocation:
		if msg.Location == nil {
			b.sendWithMarkup(chatID, textAttachLocation, locationRequestKeyboard())
			return
		}
		out, err := b.beers.SubmitLocation(ctx, &beer.SubmitLocationInput{
			UserID:    userID,
			Latitude:  msg.Location.Latitude,
			Longitude: msg.Location.Longitude,
		})
		if err != nil {
			b.send(chatID, beerErrorText(err))
			return
		}
		b.sendWithMarkup(chatID, textPickBeer, beerOptionsKeyboard(out.Options))

	default:
		b.send(chatID, textPrivateWelcome)
	}
}

// handleCallback handles inline button presses.
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil {
		return
	}

	chatID := cq.Message.Chat.ID
	userID := int64(cq.From.ID)
	data := cq.Data

	b.answerCallback(cq.ID)

	switch {
	case data == callbackCancelEventCreation:
		if err := b.events.Cancel(ctx, &event.CancelInput{UserID: userID}); err != nil {
			b.send(chatID, eventErrorText(err))
			return
		}
		b.send(chatID, textEventCancelled)

	case data == callbackBeerChoiceYes, data == callbackBeerChoiceNo:
		hasChoice := data == callbackBeerChoiceYes
		if err := b.events.SetBeerChoice(ctx, &event.SetBeerChoiceInput{UserID: userID, HasChoice: hasChoice}); err != nil {
			b.send(chatID, eventErrorText(err))
			return
		}
		if hasChoice {
			b.sendWithMarkup(chatID, textAskBeerOptions, cancelKeyboard())
		} else {
			b.sendWithMarkup(chatID, textAskNotifyChoice, notifyChoiceKeyboard())
		}

	case data == callbackNotifyImmediate, data == callbackNotifyDelayed:
		out, err := b.events.SetNotificationChoice(ctx, &event.SetNotificationChoiceInput{
			UserID:    userID,
			Immediate: data == callbackNotifyImmediate,
		})
		if err != nil {
			b.send(chatID, eventErrorText(err))
			return
		}
		if out == nil {
			b.sendWithMarkup(chatID, textAskNotifyTime, cancelKeyboard())
			return
		}
		b.send(chatID, renderEventCreated(out, b.timezone))

	case strings.HasPrefix(data, callbackSelectEventPrefix):
		eventID, err := strconv.ParseInt(strings.TrimPrefix(data, callbackSelectEventPrefix), 10, 64)
		if err != nil {
			b.send(chatID, textSomethingWrong)
			return
		}
		b.handleSelectEvent(ctx, chatID, userID, eventID)

	case strings.HasPrefix(data, callbackBeerPrefix):
		out, err := b.beers.SelectBeer(ctx, &beer.SelectBeerInput{
			UserID: userID,
			Choice: strings.TrimPrefix(data, callbackBeerPrefix),
		})
		if err != nil {
			b.send(chatID, beerErrorText(err))
			return
		}
		b.send(chatID, renderChoiceRecorded(out.Choice))

	default:
		log.Printf("telegram: unknown callback %q from user %d", data, userID)
	}
}

func (b *Bot) handleSelectEvent(ctx context.Context, chatID, userID, eventID int64) {
	out, err := b.beers.SelectEvent(ctx, &beer.SelectEventInput{UserID: userID, EventID: eventID})
	if err != nil {
		b.send(chatID, beerErrorText(err))
		return
	}

	switch {
	case out.AlreadyChosen != "":
		b.send(chatID, renderAlreadyChosen(out.AlreadyChosen))
	case out.NeedLocation:
		b.sendWithMarkup(chatID, textAttachLocation, locationRequestKeyboard())
	default:
		b.sendWithMarkup(chatID, textPickBeer, beerOptionsKeyboard(out.Options))
	}
}

// handleMembershipChange translates join and leave service messages into
// membership changes. Bot API v4 carries no dedicated membership update,
// so promotions are observed by querying the bot's own status right after
// it is added, and a removal is treated as losing whatever rights it had.
func (b *Bot) handleMembershipChange(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	actorID := int64(msg.From.ID)

	if msg.NewChatMembers != nil {
		for _, member := range *msg.NewChatMembers {
			if !member.IsBot || member.ID != b.api.Self.ID {
				continue
			}

			status, err := b.botStatus(chatID)
			if err != nil {
				log.Printf("telegram: cannot read own status in chat %d: %v", chatID, err)
				continue
			}

			out, err := b.membership.HandleChange(ctx, &membership.ChangeInput{
				ChatID:       chatID,
				ActorID:      actorID,
				OldStatus:    membership.StatusLeft,
				NewStatus:    status,
				SubjectIsBot: true,
			})
			if err != nil {
				log.Printf("telegram: failed to handle membership change in chat %d: %v", chatID, err)
				continue
			}
			if out.Action == membership.ActionPromoted {
				b.send(chatID, textGroupActivated)
			}
		}
	}

	if msg.LeftChatMember != nil && msg.LeftChatMember.IsBot && msg.LeftChatMember.ID == b.api.Self.ID {
		out, err := b.membership.HandleChange(ctx, &membership.ChangeInput{
			ChatID:       chatID,
			ActorID:      actorID,
			OldStatus:    membership.StatusAdministrator,
			NewStatus:    membership.StatusLeft,
			SubjectIsBot: true,
		})
		if err != nil {
			log.Printf("telegram: failed to handle membership change in chat %d: %v", chatID, err)
			return
		}
		if out.AdminRemoved {
			b.send(chatID, textAdminRightsRemoved)
		}
	}
}

func (b *Bot) botStatus(chatID int64) (string, error) {
	member, err := b.api.GetChatMember(tgbotapi.ChatConfigWithUser{
		ChatID: chatID,
		UserID: b.api.Self.ID,
	})
	if err != nil {
		return "", err
	}
	return member.Status, nil
}

// reply sends the mapped error text, or the next prompt on success
func (b *Bot) reply(chatID int64, err error, errText func(error) string, next string) {
	if err != nil {
		b.send(chatID, errText(err))
		return
	}
	b.send(chatID, next)
}

// replyWizard is reply for wizard steps, attaching the cancel button to
// the next prompt
func (b *Bot) replyWizard(chatID int64, err error, next string) {
	if err != nil {
		b.send(chatID, eventErrorText(err))
		return
	}
	b.sendWithMarkup(chatID, next, cancelKeyboard())
}

func (b *Bot) send(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("telegram: failed to send message to chat %d: %v", chatID, err)
	}
}

func (b *Bot) sendWithMarkup(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("telegram: failed to send message to chat %d: %v", chatID, err)
	}
}

func (b *Bot) answerCallback(id string) {
	if _, err := b.api.AnswerCallbackQuery(tgbotapi.NewCallback(id, "")); err != nil {
		log.Printf("telegram: failed to answer callback: %v", err)
	}
}

// largestPhotoID returns the file ID of the highest-resolution photo size,
// or an empty string when the message carries no photo.
func largestPhotoID(msg *tgbotapi.Message) string {
	if msg.Photo == nil || len(*msg.Photo) == 0 {
		return ""
	}
	sizes := *msg.Photo
	return sizes[len(sizes)-1].FileID
}

func formatCoordinates(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', 6, 64) + ", " + strconv.FormatFloat(lon, 'f', 6, 64)
}
