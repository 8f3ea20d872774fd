package beer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/dvigun/beerbot/internal/common/clock"
	"github.com/dvigun/beerbot/internal/geo"
	"github.com/dvigun/beerbot/internal/models"
	beerselectionRepo "github.com/dvigun/beerbot/internal/repositories/beerselection"
	eventRepo "github.com/dvigun/beerbot/internal/repositories/event"
	sessionRepo "github.com/dvigun/beerbot/internal/repositories/session"
	userRepo "github.com/dvigun/beerbot/internal/repositories/user"
)

// Define errors
var (
	ErrNotRegistered = errors.New("user is not registered")
	ErrEventNotFound = errors.New("event not found")
	ErrTooLate       = errors.New("event is outside the selection window")
	ErrTooFar        = errors.New("user is outside the event geofence")
	ErrInvalidChoice = errors.New("choice is not one of the event's options")
	ErrNoActiveEvent = errors.New("no event picked in this conversation")
)

// Session data keys
const dataEventID = "event_id"

// Config holds configuration for the beer selection service
type Config struct {
	// Timezone is the bot's operating timezone
	Timezone *time.Location

	// SelectionWindow is how long before event start a selection opens
	SelectionWindow time.Duration

	// GeofenceRadiusMeters bounds how far from the event a user may be
	GeofenceRadiusMeters float64

	// DefaultBeerLabel names the implicit option of events without a
	// configured choice
	DefaultBeerLabel string
}

// service implements the Service interface
type service struct {
	config            *Config
	userRepo          userRepo.Repository
	eventRepo         eventRepo.Repository
	beerSelectionRepo beerselectionRepo.Repository
	sessions          sessionRepo.Store
	clock             clock.Clock
}

// NewService creates a new beer selection service
func NewService(cfg *Config, userRepository userRepo.Repository, eventRepository eventRepo.Repository, beerSelectionRepository beerselectionRepo.Repository, sessions sessionRepo.Store, clk clock.Clock) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Timezone == nil {
		return nil, errors.New("timezone cannot be nil")
	}

	if cfg.SelectionWindow <= 0 {
		return nil, errors.New("selection window must be positive")
	}

	if cfg.GeofenceRadiusMeters <= 0 {
		return nil, errors.New("geofence radius must be positive")
	}

	if userRepository == nil {
		return nil, errors.New("user repository cannot be nil")
	}

	if eventRepository == nil {
		return nil, errors.New("event repository cannot be nil")
	}

	if beerSelectionRepository == nil {
		return nil, errors.New("beer selection repository cannot be nil")
	}

	if sessions == nil {
		return nil, errors.New("session store cannot be nil")
	}

	if clk == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &service{
		config:            cfg,
		userRepo:          userRepository,
		eventRepo:         eventRepository,
		beerSelectionRepo: beerSelectionRepository,
		sessions:          sessions,
		clock:             clk,
	}, nil
}

// Start lists the events still open for selection
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil || input.UserID == 0 {
		return nil, errors.New("input and user ID cannot be empty")
	}

	_, err := s.userRepo.GetByTelegramID(ctx, &userRepo.GetByTelegramIDInput{TelegramID: input.UserID})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrNotRegistered
		}
		return nil, fmt.Errorf("failed to look up user %d: %w", input.UserID, err)
	}

	now := s.clock.Now().In(s.config.Timezone)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.config.Timezone)

	listed, err := s.eventRepo.ListUpcoming(ctx, &eventRepo.ListUpcomingInput{From: today})
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}

	// The storage query is date-granular; same-day events whose start
	// has just passed are filtered here against the current time
	events := make([]*models.Event, 0, len(listed.Events))
	for _, event := range listed.Events {
		if event.StartsAt(s.config.Timezone).After(now) {
			events = append(events, event)
		}
	}

	return &StartOutput{Events: events}, nil
}

// SelectEvent picks an event and enforces the selection window
func (s *service) SelectEvent(ctx context.Context, input *SelectEventInput) (*SelectEventOutput, error) {
	if input == nil || input.UserID == 0 || input.EventID == 0 {
		return nil, errors.New("input, user ID and event ID cannot be empty")
	}

	event, err := s.eventRepo.Get(ctx, &eventRepo.GetInput{EventID: input.EventID})
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, s.failClosed(ctx, input.UserID, fmt.Errorf("failed to get event %d: %w", input.EventID, err))
	}

	// Idempotent re-entry guard
	existing, err := s.beerSelectionRepo.GetByUserAndEvent(ctx, &beerselectionRepo.GetByUserAndEventInput{
		UserID:  input.UserID,
		EventID: event.ID,
	})
	if err == nil {
		if clearErr := s.sessions.Clear(ctx, input.UserID); clearErr != nil {
			return nil, fmt.Errorf("failed to clear selection state: %w", clearErr)
		}
		return &SelectEventOutput{Event: event, AlreadyChosen: existing.BeerChoice}, nil
	}
	if !errors.Is(err, beerselectionRepo.ErrSelectionNotFound) {
		return nil, s.failClosed(ctx, input.UserID, fmt.Errorf("failed to look up existing selection: %w", err))
	}

	// Selection opens SelectionWindow before start and closes at start.
	// There is deliberately no distinct too-early rejection beyond the
	// future-events listing
	now := s.clock.Now()
	start := event.StartsAt(s.config.Timezone)
	if !start.After(now) || start.Sub(now) > s.config.SelectionWindow {
		if clearErr := s.sessions.Clear(ctx, input.UserID); clearErr != nil {
			return nil, fmt.Errorf("failed to clear selection state: %w", clearErr)
		}
		return nil, ErrTooLate
	}

	if err := s.sessions.UpdateData(ctx, input.UserID, map[string]string{
		dataEventID: strconv.FormatInt(event.ID, 10),
	}); err != nil {
		return nil, s.failClosed(ctx, input.UserID, fmt.Errorf("failed to store selection data: %w", err))
	}

	if event.HasLocation() {
		if err := s.sessions.SetState(ctx, input.UserID, StateAwaitingLocation); err != nil {
			return nil, s.failClosed(ctx, input.UserID, fmt.Errorf("failed to set selection state: %w", err))
		}
		return &SelectEventOutput{Event: event, NeedLocation: true}, nil
	}

	if err := s.sessions.SetState(ctx, input.UserID, StateAwaitingChoice); err != nil {
		return nil, s.failClosed(ctx, input.UserID, fmt.Errorf("failed to set selection state: %w", err))
	}

	return &SelectEventOutput{
		Event:   event,
		Options: event.BeerOptions(s.config.DefaultBeerLabel),
	}, nil
}

// SubmitLocation checks the attached location against the event
// geofence. Too far keeps the state so the user may retry with a
// corrected location.
func (s *service) SubmitLocation(ctx context.Context, input *SubmitLocationInput) (*SubmitLocationOutput, error) {
	if input == nil || input.UserID == 0 {
		return nil, errors.New("input and user ID cannot be empty")
	}

	event, err := s.activeEvent(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if !event.HasLocation() {
		return nil, s.failClosed(ctx, input.UserID, fmt.Errorf("event %d has no coordinates", event.ID))
	}

	distance, err := geo.Distance(*event.Latitude, *event.Longitude, input.Latitude, input.Longitude)
	if err != nil {
		return nil, s.failClosed(ctx, input.UserID, fmt.Errorf("failed to compute geofence distance: %w", err))
	}

	if distance > s.config.GeofenceRadiusMeters {
		return nil, ErrTooFar
	}

	if err := s.sessions.SetState(ctx, input.UserID, StateAwaitingChoice); err != nil {
		return nil, s.failClosed(ctx, input.UserID, fmt.Errorf("failed to set selection state: %w", err))
	}

	return &SubmitLocationOutput{
		Options: event.BeerOptions(s.config.DefaultBeerLabel),
	}, nil
}

// SelectBeer records the choice
func (s *service) SelectBeer(ctx context.Context, input *SelectBeerInput) (*SelectBeerOutput, error) {
	if input == nil || input.UserID == 0 || input.Choice == "" {
		return nil, errors.New("input, user ID and choice cannot be empty")
	}

	event, err := s.activeEvent(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	valid := false
	for _, option := range event.BeerOptions(s.config.DefaultBeerLabel) {
		if option == input.Choice {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrInvalidChoice
	}

	out, err := s.beerSelectionRepo.CreateOrGet(ctx, &beerselectionRepo.CreateOrGetInput{
		Selection: &models.BeerSelection{
			UserID:     input.UserID,
			EventID:    event.ID,
			ChatID:     event.ChatID,
			BeerChoice: input.Choice,
			CreatedAt:  s.clock.Now(),
		},
	})
	if err != nil {
		return nil, s.failClosed(ctx, input.UserID, fmt.Errorf("failed to record selection: %w", err))
	}

	if err := s.sessions.Clear(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to clear selection state: %w", err)
	}

	return &SelectBeerOutput{Choice: out.Selection.BeerChoice}, nil
}

// activeEvent resolves the event picked earlier in this conversation.
// Every failure here means the conversation cannot continue, so the
// state is abandoned.
func (s *service) activeEvent(ctx context.Context, userID int64) (*models.Event, error) {
	data, err := s.sessions.GetData(ctx, userID)
	if err != nil {
		return nil, s.failClosed(ctx, userID, fmt.Errorf("failed to read selection data: %w", err))
	}

	eventID, err := strconv.ParseInt(data[dataEventID], 10, 64)
	if err != nil {
		return nil, s.failClosed(ctx, userID, ErrNoActiveEvent)
	}

	event, err := s.eventRepo.Get(ctx, &eventRepo.GetInput{EventID: eventID})
	if err != nil {
		return nil, s.failClosed(ctx, userID, fmt.Errorf("failed to get event %d: %w", eventID, err))
	}

	return event, nil
}

// failClosed abandons the conversation so an unclassified failure never
// leaves the machine dangling in a half-written state. The clear itself
// is best-effort: the session expires on its own either way.
func (s *service) failClosed(ctx context.Context, userID int64, err error) error {
	if clearErr := s.sessions.Clear(ctx, userID); clearErr != nil {
		log.Printf("beer: failed to clear state for user %d: %v", userID, clearErr)
	}
	return err
}
