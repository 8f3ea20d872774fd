package event

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dvigun/beerbot/internal/common/clock"
	"github.com/dvigun/beerbot/internal/models"
	eventRepo "github.com/dvigun/beerbot/internal/repositories/event"
	groupadminRepo "github.com/dvigun/beerbot/internal/repositories/groupadmin"
	sessionRepo "github.com/dvigun/beerbot/internal/repositories/session"
	"github.com/dvigun/beerbot/internal/scheduler"
	"github.com/dvigun/beerbot/internal/services/notify"
)

// Define errors
var (
	ErrNotGroupAdmin           = errors.New("user does not administer any chat")
	ErrNameLength              = errors.New("event name must be 1-255 characters")
	ErrInvalidDateFormat       = errors.New("date must be DD.MM.YYYY")
	ErrDateInPast              = errors.New("date cannot be in the past")
	ErrInvalidTimeFormat       = errors.New("time must be HH:MM")
	ErrInvalidLocation         = errors.New("location must be \"lat,lon\" or a skip token")
	ErrLocationNameLength      = errors.New("location name must be 1-500 characters")
	ErrDescriptionLength       = errors.New("description must be 1-1000 characters")
	ErrImageRequired           = errors.New("expected an image attachment or a skip token")
	ErrInvalidBeerOptions      = errors.New("expected exactly two comma-separated options, 1-100 characters each")
	ErrInvalidNotifyTimeFormat = errors.New("notification time must be DD.MM.YYYY HH:MM")
	ErrNotifyTimeInPast        = errors.New("notification time must be in the future")
	ErrBeerOptionsCorrupted    = errors.New("beer options missing at finalization")
	ErrSchedulingFailed        = errors.New("failed to schedule notification job")
)

// Session data keys
const (
	dataChatID        = "chat_id"
	dataName          = "name"
	dataDate          = "date"
	dataTime          = "time"
	dataLatitude      = "lat"
	dataLongitude     = "lon"
	dataLocationName  = "location_name"
	dataDescription   = "description"
	dataImageFileID   = "image_file_id"
	dataHasBeerChoice = "has_beer_choice"
	dataBeerOption1   = "beer_option1"
	dataBeerOption2   = "beer_option2"
)

const (
	maxNameLength         = 255
	maxLocationNameLength = 500
	maxDescriptionLength  = 1000
	maxBeerOptionLength   = 100

	storedDateLayout = "2006-01-02"
	inputDateLayout  = "02.01.2006"
	timeLayout       = "15:04"
	notifyTimeLayout = "02.01.2006 15:04"
)

// Config holds configuration for the event creation service
type Config struct {
	// Timezone is the bot's operating timezone
	Timezone *time.Location

	// DefaultBeerLabel is stored as the single option of events
	// without a configured choice
	DefaultBeerLabel string
}

// service implements the Service interface
type service struct {
	config         *Config
	eventRepo      eventRepo.Repository
	groupAdminRepo groupadminRepo.Repository
	sessions       sessionRepo.Store
	scheduler      scheduler.Scheduler
	notifier       notify.Service
	clock          clock.Clock
}

// NewService creates a new event creation service
func NewService(cfg *Config, eventRepository eventRepo.Repository, groupAdminRepository groupadminRepo.Repository, sessions sessionRepo.Store, sched scheduler.Scheduler, notifier notify.Service, clk clock.Clock) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Timezone == nil {
		return nil, errors.New("timezone cannot be nil")
	}

	if cfg.DefaultBeerLabel == "" {
		return nil, errors.New("default beer label cannot be empty")
	}

	if eventRepository == nil {
		return nil, errors.New("event repository cannot be nil")
	}

	if groupAdminRepository == nil {
		return nil, errors.New("group admin repository cannot be nil")
	}

	if sessions == nil {
		return nil, errors.New("session store cannot be nil")
	}

	if sched == nil {
		return nil, errors.New("scheduler cannot be nil")
	}

	if notifier == nil {
		return nil, errors.New("notify service cannot be nil")
	}

	if clk == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &service{
		config:         cfg,
		eventRepo:      eventRepository,
		groupAdminRepo: groupAdminRepository,
		sessions:       sessions,
		scheduler:      sched,
		notifier:       notifier,
		clock:          clk,
	}, nil
}

// Start enters the wizard for a user administering at least one chat
func (s *service) Start(ctx context.Context, input *StartInput) error {
	if input == nil || input.UserID == 0 {
		return errors.New("input and user ID cannot be empty")
	}

	admins, err := s.groupAdminRepo.GetByUserID(ctx, &groupadminRepo.GetByUserIDInput{UserID: input.UserID})
	if err != nil {
		return fmt.Errorf("failed to look up admin records for user %d: %w", input.UserID, err)
	}
	if len(admins.Admins) == 0 {
		return ErrNotGroupAdmin
	}

	if err := s.sessions.UpdateData(ctx, input.UserID, map[string]string{
		dataChatID: strconv.FormatInt(admins.Admins[0].ChatID, 10),
	}); err != nil {
		return s.failClosed(ctx, input.UserID, fmt.Errorf("failed to store event data: %w", err))
	}

	return s.setState(ctx, input.UserID, StateAwaitingName)
}

// Cancel aborts the wizard from any state
func (s *service) Cancel(ctx context.Context, input *CancelInput) error {
	if input == nil || input.UserID == 0 {
		return errors.New("input and user ID cannot be empty")
	}

	if err := s.sessions.Clear(ctx, input.UserID); err != nil {
		return fmt.Errorf("failed to clear event creation state: %w", err)
	}

	return nil
}

// SubmitName handles the AwaitingName step
func (s *service) SubmitName(ctx context.Context, input *SubmitTextInput) error {
	if input == nil || input.UserID == 0 {
		return errors.New("input and user ID cannot be empty")
	}

	name := strings.TrimSpace(input.Text)
	if n := utf8.RuneCountInString(name); n < 1 || n > maxNameLength {
		return ErrNameLength
	}

	if err := s.storeField(ctx, input.UserID, dataName, name); err != nil {
		return err
	}

	return s.setState(ctx, input.UserID, StateAwaitingDate)
}

// SubmitDate handles the AwaitingDate step
func (s *service) SubmitDate(ctx context.Context, input *SubmitTextInput) error {
	if input == nil || input.UserID == 0 {
		return errors.New("input and user ID cannot be empty")
	}

	parsed, err := time.ParseInLocation(inputDateLayout, strings.TrimSpace(input.Text), s.config.Timezone)
	if err != nil {
		return ErrInvalidDateFormat
	}

	now := s.clock.Now().In(s.config.Timezone)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.config.Timezone)
	if parsed.Before(today) {
		return ErrDateInPast
	}

	if err := s.storeField(ctx, input.UserID, dataDate, parsed.Format(storedDateLayout)); err != nil {
		return err
	}

	return s.setState(ctx, input.UserID, StateAwaitingTime)
}

// SubmitTime handles the AwaitingTime step
func (s *service) SubmitTime(ctx context.Context, input *SubmitTextInput) error {
	if input == nil || input.UserID == 0 {
		return errors.New("input and user ID cannot be empty")
	}

	text := strings.TrimSpace(input.Text)
	if _, err := time.Parse(timeLayout, text); err != nil {
		return ErrInvalidTimeFormat
	}

	if err := s.storeField(ctx, input.UserID, dataTime, text); err != nil {
		return err
	}

	return s.setState(ctx, input.UserID, StateAwaitingLocation)
}

// SubmitLocation handles the AwaitingLocation step
func (s *service) SubmitLocation(ctx context.Context, input *SubmitTextInput) error {
	if input == nil || input.UserID == 0 {
		return errors.New("input and user ID cannot be empty")
	}

	text := strings.TrimSpace(input.Text)
	if !isSkipToken(text) {
		lat, lon, err := parseCoordinates(text)
		if err != nil {
			return ErrInvalidLocation
		}
		if err := s.sessions.UpdateData(ctx, input.UserID, map[string]string{
			dataLatitude:  strconv.FormatFloat(lat, 'f', -1, 64),
			dataLongitude: strconv.FormatFloat(lon, 'f', -1, 64),
		}); err != nil {
			return s.failClosed(ctx, input.UserID, fmt.Errorf("failed to store event data: %w", err))
		}
	}

	return s.setState(ctx, input.UserID, StateAwaitingLocationName)
}

// SubmitLocationName handles the AwaitingLocationName step
func (s *service) SubmitLocationName(ctx context.Context, input *SubmitTextInput) error {
	if input == nil || input.UserID == 0 {
		return errors.New("input and user ID cannot be empty")
	}

	text := strings.TrimSpace(input.Text)
	if !isSkipToken(text) {
		if n := utf8.RuneCountInString(text); n < 1 || n > maxLocationNameLength {
			return ErrLocationNameLength
		}
		if err := s.storeField(ctx, input.UserID, dataLocationName, text); err != nil {
			return err
		}
	}

	return s.setState(ctx, input.UserID, StateAwaitingDescription)
}

// SubmitDescription handles the AwaitingDescription step
func (s *service) SubmitDescription(ctx context.Context, input *SubmitTextInput) error {
	if input == nil || input.UserID == 0 {
		return errors.New("input and user ID cannot be empty")
	}

	text := strings.TrimSpace(input.Text)
	if !isSkipToken(text) {
		if n := utf8.RuneCountInString(text); n < 1 || n > maxDescriptionLength {
			return ErrDescriptionLength
		}
		if err := s.storeField(ctx, input.UserID, dataDescription, text); err != nil {
			return err
		}
	}

	return s.setState(ctx, input.UserID, StateAwaitingImage)
}

// SubmitImage handles the AwaitingImage step
func (s *service) SubmitImage(ctx context.Context, input *SubmitImageInput) error {
	if input == nil || input.UserID == 0 {
		return errors.New("input and user ID cannot be empty")
	}

	if input.FileID != "" {
		if err := s.storeField(ctx, input.UserID, dataImageFileID, input.FileID); err != nil {
			return err
		}
	} else if !isSkipToken(input.Text) {
		return ErrImageRequired
	}

	return s.setState(ctx, input.UserID, StateAwaitingBeerChoice)
}

// SetBeerChoice handles the AwaitingBeerChoice toggle
func (s *service) SetBeerChoice(ctx context.Context, input *SetBeerChoiceInput) error {
	if input == nil || input.UserID == 0 {
		return errors.New("input and user ID cannot be empty")
	}

	if input.HasChoice {
		if err := s.storeField(ctx, input.UserID, dataHasBeerChoice, "1"); err != nil {
			return err
		}
		return s.setState(ctx, input.UserID, StateAwaitingBeerOptions)
	}

	if err := s.storeField(ctx, input.UserID, dataHasBeerChoice, "0"); err != nil {
		return err
	}
	return s.setState(ctx, input.UserID, StateAwaitingNotifyChoice)
}

// SubmitBeerOptions handles the AwaitingBeerOptions step
func (s *service) SubmitBeerOptions(ctx context.Context, input *SubmitTextInput) error {
	if input == nil || input.UserID == 0 {
		return errors.New("input and user ID cannot be empty")
	}

	parts := strings.Split(input.Text, ",")
	if len(parts) != 2 {
		return ErrInvalidBeerOptions
	}

	first := strings.TrimSpace(parts[0])
	second := strings.TrimSpace(parts[1])
	for _, option := range []string{first, second} {
		if n := utf8.RuneCountInString(option); n < 1 || n > maxBeerOptionLength {
			return ErrInvalidBeerOptions
		}
	}

	if err := s.sessions.UpdateData(ctx, input.UserID, map[string]string{
		dataBeerOption1: first,
		dataBeerOption2: second,
	}); err != nil {
		return s.failClosed(ctx, input.UserID, fmt.Errorf("failed to store event data: %w", err))
	}

	return s.setState(ctx, input.UserID, StateAwaitingNotifyChoice)
}

// SetNotificationChoice handles the AwaitingNotifyChoice toggle
func (s *service) SetNotificationChoice(ctx context.Context, input *SetNotificationChoiceInput) (*FinalizeOutput, error) {
	if input == nil || input.UserID == 0 {
		return nil, errors.New("input and user ID cannot be empty")
	}

	if input.Immediate {
		return s.finalize(ctx, input.UserID, nil)
	}

	if err := s.setState(ctx, input.UserID, StateAwaitingNotifyTime); err != nil {
		return nil, err
	}

	return nil, nil
}

// SubmitNotifyTime handles the AwaitingNotifyTime step and finalizes
// the event
func (s *service) SubmitNotifyTime(ctx context.Context, input *SubmitTextInput) (*FinalizeOutput, error) {
	if input == nil || input.UserID == 0 {
		return nil, errors.New("input and user ID cannot be empty")
	}

	notifyAt, err := time.ParseInLocation(notifyTimeLayout, strings.TrimSpace(input.Text), s.config.Timezone)
	if err != nil {
		return nil, ErrInvalidNotifyTimeFormat
	}

	if !notifyAt.After(s.clock.Now()) {
		return nil, ErrNotifyTimeInPast
	}

	return s.finalize(ctx, input.UserID, &notifyAt)
}

// finalize persists the event and arranges its notifications. A
// scheduling failure aborts the flow with the event left persisted;
// that asymmetry is deliberate and the caller tells the operator to
// handle the missing job manually.
func (s *service) finalize(ctx context.Context, userID int64, notifyAt *time.Time) (*FinalizeOutput, error) {
	data, err := s.sessions.GetData(ctx, userID)
	if err != nil {
		return nil, s.failClosed(ctx, userID, fmt.Errorf("failed to read event data: %w", err))
	}

	chatID, err := strconv.ParseInt(data[dataChatID], 10, 64)
	if err != nil {
		return nil, s.failClosed(ctx, userID, fmt.Errorf("event data has no valid chat ID: %w", err))
	}

	// Transient data could have been corrupted by a crash-resume
	hasChoice := data[dataHasBeerChoice] == "1"
	if hasChoice && (data[dataBeerOption1] == "" || data[dataBeerOption2] == "") {
		return nil, s.failClosed(ctx, userID, ErrBeerOptionsCorrupted)
	}

	eventDate, err := time.ParseInLocation(storedDateLayout, data[dataDate], s.config.Timezone)
	if err != nil {
		return nil, s.failClosed(ctx, userID, fmt.Errorf("event data has no valid date: %w", err))
	}

	record := &models.Event{
		Name:          data[dataName],
		EventDate:     eventDate,
		EventTime:     data[dataTime],
		LocationName:  data[dataLocationName],
		Description:   data[dataDescription],
		ImageFileID:   data[dataImageFileID],
		HasBeerChoice: hasChoice,
		CreatedBy:     userID,
		ChatID:        chatID,
		CreatedAt:     s.clock.Now(),
	}

	if hasChoice {
		record.BeerOption1 = data[dataBeerOption1]
		record.BeerOption2 = data[dataBeerOption2]
	} else {
		record.BeerOption1 = s.config.DefaultBeerLabel
	}

	if latText, ok := data[dataLatitude]; ok && latText != "" {
		lat, latErr := strconv.ParseFloat(latText, 64)
		lon, lonErr := strconv.ParseFloat(data[dataLongitude], 64)
		if latErr != nil || lonErr != nil {
			return nil, s.failClosed(ctx, userID, fmt.Errorf("event data has corrupt coordinates: %v, %v", latErr, lonErr))
		}
		record.Latitude = &lat
		record.Longitude = &lon
	}

	created, err := s.eventRepo.Create(ctx, &eventRepo.CreateInput{Event: record})
	if err != nil {
		return nil, s.failClosed(ctx, userID, fmt.Errorf("failed to persist event: %w", err))
	}

	// The bartender summary always fires at event start. Failing to
	// schedule it aborts the flow, but the persisted event is NOT
	// rolled back
	bartenderJob, err := s.scheduler.Submit(ctx, &scheduler.SubmitInput{
		TaskName: scheduler.TaskBartenderSummary,
		Payload:  map[string]string{scheduler.PayloadEventID: strconv.FormatInt(created.ID, 10)},
		FireAt:   created.StartsAt(s.config.Timezone),
	})
	if err != nil {
		log.Printf("event: failed to schedule bartender job for event %d: %v", created.ID, err)
		return nil, s.failClosed(ctx, userID, fmt.Errorf("%w: %v", ErrSchedulingFailed, err))
	}

	out := &FinalizeOutput{Event: created}

	var userNotifyJobID string
	if notifyAt == nil {
		sent, notifyErr := s.notifier.NotifyParticipants(ctx, &notify.NotifyParticipantsInput{EventID: created.ID})
		if notifyErr != nil {
			// Fan-out swallows per-recipient failures; an error here
			// means the whole dispatch could not run
			log.Printf("event: participant notification for event %d failed: %v", created.ID, notifyErr)
		} else {
			out.Sent = sent.Sent
			out.Failed = sent.Failed
		}
	} else {
		notifyJob, submitErr := s.scheduler.Submit(ctx, &scheduler.SubmitInput{
			TaskName: scheduler.TaskUserNotification,
			Payload:  map[string]string{scheduler.PayloadEventID: strconv.FormatInt(created.ID, 10)},
			FireAt:   *notifyAt,
		})
		if submitErr != nil {
			log.Printf("event: failed to schedule participant job for event %d: %v", created.ID, submitErr)
			return nil, s.failClosed(ctx, userID, fmt.Errorf("%w: %v", ErrSchedulingFailed, submitErr))
		}
		userNotifyJobID = notifyJob.JobID
		out.Scheduled = true
	}

	// Job handles are best-effort bookkeeping, never required for
	// correctness
	if err := s.eventRepo.SetJobIDs(ctx, &eventRepo.SetJobIDsInput{
		EventID:         created.ID,
		UserNotifyJobID: userNotifyJobID,
		BartenderJobID:  bartenderJob.JobID,
	}); err != nil {
		log.Printf("event: failed to persist job handles for event %d: %v", created.ID, err)
	}

	if err := s.sessions.Clear(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to clear event creation state: %w", err)
	}

	return out, nil
}

func (s *service) setState(ctx context.Context, userID int64, state string) error {
	if err := s.sessions.SetState(ctx, userID, state); err != nil {
		return s.failClosed(ctx, userID, fmt.Errorf("failed to set event creation state: %w", err))
	}
	return nil
}

func (s *service) storeField(ctx context.Context, userID int64, key, value string) error {
	if err := s.sessions.UpdateData(ctx, userID, map[string]string{key: value}); err != nil {
		return s.failClosed(ctx, userID, fmt.Errorf("failed to store event data: %w", err))
	}
	return nil
}

// failClosed abandons the conversation so an unclassified failure never
// leaves the wizard dangling in a half-written state. The clear itself
// is best-effort: the session expires on its own either way.
func (s *service) failClosed(ctx context.Context, userID int64, err error) error {
	if clearErr := s.sessions.Clear(ctx, userID); clearErr != nil {
		log.Printf("event: failed to clear state for user %d: %v", userID, clearErr)
	}
	return err
}

// parseCoordinates parses "lat,lon" with range validation
func parseCoordinates(text string) (float64, float64, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return 0, 0, errors.New("expected two comma-separated values")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, errors.New("coordinates out of range")
	}

	return lat, lon, nil
}

// isSkipToken reports whether the text is one of the accepted
// skip-this-question answers
func isSkipToken(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "-", "нет", "пропустить":
		return true
	}
	return false
}
