package notify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/dvigun/beerbot/internal/models"
	beerselectionRepo "github.com/dvigun/beerbot/internal/repositories/beerselection"
	eventRepo "github.com/dvigun/beerbot/internal/repositories/event"
	userRepo "github.com/dvigun/beerbot/internal/repositories/user"
)

// Config holds configuration for the notification service
type Config struct {
	// Timezone is the bot's operating timezone
	Timezone *time.Location

	// SelectionWindow bounds the bartender aggregation: only selections
	// recorded within this interval before event start are counted
	SelectionWindow time.Duration

	// DefaultBeerLabel names the implicit option of events without a
	// configured choice
	DefaultBeerLabel string

	// BartenderChatID is the fixed recipient of bartender summaries
	BartenderChatID int64
}

// service implements the Service interface
type service struct {
	config            *Config
	eventRepo         eventRepo.Repository
	userRepo          userRepo.Repository
	beerSelectionRepo beerselectionRepo.Repository
	transport         Transport
}

// NewService creates a new notification service
func NewService(cfg *Config, eventRepository eventRepo.Repository, userRepository userRepo.Repository, beerSelectionRepository beerselectionRepo.Repository, transport Transport) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Timezone == nil {
		return nil, errors.New("timezone cannot be nil")
	}

	if cfg.BartenderChatID == 0 {
		return nil, errors.New("bartender chat ID cannot be zero")
	}

	if eventRepository == nil {
		return nil, errors.New("event repository cannot be nil")
	}

	if userRepository == nil {
		return nil, errors.New("user repository cannot be nil")
	}

	if beerSelectionRepository == nil {
		return nil, errors.New("beer selection repository cannot be nil")
	}

	if transport == nil {
		return nil, errors.New("transport cannot be nil")
	}

	return &service{
		config:            cfg,
		eventRepo:         eventRepository,
		userRepo:          userRepository,
		beerSelectionRepo: beerSelectionRepository,
		transport:         transport,
	}, nil
}

// NotifyParticipants fans the event announcement out to every user
// registered through the event's chat
func (s *service) NotifyParticipants(ctx context.Context, input *NotifyParticipantsInput) (*NotifyParticipantsOutput, error) {
	if input == nil || input.EventID == 0 {
		return nil, errors.New("input and event ID cannot be empty")
	}

	event, err := s.eventRepo.Get(ctx, &eventRepo.GetInput{EventID: input.EventID})
	if err != nil {
		return nil, fmt.Errorf("failed to get event %d: %w", input.EventID, err)
	}

	users, err := s.userRepo.ListByGroupID(ctx, &userRepo.ListByGroupIDInput{GroupID: event.ChatID})
	if err != nil {
		return nil, fmt.Errorf("failed to list users for chat %d: %w", event.ChatID, err)
	}

	text := renderAnnouncement(event)

	out := &NotifyParticipantsOutput{}
	for _, user := range users.Users {
		msg := &Message{
			ChatID:      user.TelegramID,
			Text:        text,
			ImageFileID: event.ImageFileID,
		}
		if err := s.transport.Send(ctx, msg); err != nil {
			log.Printf("notify: failed to send event %d announcement to user %d: %v", event.ID, user.TelegramID, err)
			out.Failed++
			continue
		}
		out.Sent++
	}

	log.Printf("notify: event %d announcement sent=%d failed=%d", event.ID, out.Sent, out.Failed)
	return out, nil
}

// BartenderSummary aggregates selections for an event and sends one
// summary to the bartender chat
func (s *service) BartenderSummary(ctx context.Context, input *BartenderSummaryInput) error {
	if input == nil || input.EventID == 0 {
		return errors.New("input and event ID cannot be empty")
	}

	event, err := s.eventRepo.Get(ctx, &eventRepo.GetInput{EventID: input.EventID})
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			// The event was deleted after the job was scheduled
			log.Printf("notify: event %d no longer exists, skipping bartender summary", input.EventID)
			return nil
		}
		return fmt.Errorf("failed to get event %d: %w", input.EventID, err)
	}

	marked, err := s.eventRepo.MarkBartenderSent(ctx, &eventRepo.MarkBartenderSentInput{EventID: event.ID})
	if err != nil {
		return fmt.Errorf("failed to mark bartender summary sent: %w", err)
	}
	if marked.AlreadySent {
		log.Printf("notify: bartender summary for event %d already sent, skipping", event.ID)
		return nil
	}

	start := event.StartsAt(s.config.Timezone)
	counts, err := s.beerSelectionRepo.CountByChoice(ctx, &beerselectionRepo.CountByChoiceInput{
		EventID: event.ID,
		From:    start.Add(-s.config.SelectionWindow),
		To:      start,
	})
	if err != nil {
		return fmt.Errorf("failed to count selections for event %d: %w", event.ID, err)
	}

	text := renderBartenderSummary(event, counts, s.config.DefaultBeerLabel)

	if err := s.transport.Send(ctx, &Message{ChatID: s.config.BartenderChatID, Text: text}); err != nil {
		return fmt.Errorf("failed to send bartender summary for event %d: %w", event.ID, err)
	}

	log.Printf("notify: bartender summary for event %d sent, participants=%d", event.ID, counts.Participants)
	return nil
}

// renderAnnouncement builds the participant announcement text
func renderAnnouncement(event *models.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🍺 Новое событие: %s\n", event.Name)
	fmt.Fprintf(&b, "📅 %s в %s\n", event.EventDate.Format("02.01.2006"), event.EventTime)
	if event.LocationName != "" {
		fmt.Fprintf(&b, "📍 %s\n", event.LocationName)
	}
	if event.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", event.Description)
	}
	b.WriteString("\nВыбрать пиво: /beer")
	return b.String()
}

// renderBartenderSummary builds the per-option order summary
func renderBartenderSummary(event *models.Event, counts *beerselectionRepo.CountByChoiceOutput, defaultLabel string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🍻 Заказы на «%s» (%s %s)\n\n", event.Name, event.EventDate.Format("02.01.2006"), event.EventTime)

	options := event.BeerOptions(defaultLabel)
	total := 0
	for _, option := range options {
		count := counts.Counts[option]
		fmt.Fprintf(&b, "%s: %d\n", option, count)
		total += count
	}

	// Selections outside the configured options should never happen, but
	// the label is a free string at the storage layer
	var unknown []string
	for label := range counts.Counts {
		known := false
		for _, option := range options {
			if label == option {
				known = true
				break
			}
		}
		if !known {
			unknown = append(unknown, label)
		}
	}
	sort.Strings(unknown)
	for _, label := range unknown {
		fmt.Fprintf(&b, "%s: %d\n", label, counts.Counts[label])
		total += counts.Counts[label]
	}

	fmt.Fprintf(&b, "\nВсего заказов: %d, участников: %d", total, counts.Participants)
	return b.String()
}
