package registration

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
	groupadminRepo "github.com/dvigun/beerbot/internal/repositories/groupadmin"
	sessionRepo "github.com/dvigun/beerbot/internal/repositories/session"
	userRepo "github.com/dvigun/beerbot/internal/repositories/user"
)

// Define errors
var (
	ErrAlreadyRegistered = errors.New("user is already registered")
	ErrSponsorNotAdmin   = errors.New("sponsoring chat has no admin record")
	ErrNameTooShort      = errors.New("name must be at least 2 characters")
	ErrInvalidBirthDate  = errors.New("birth date must be DD.MM or DD.MM.YYYY")
	ErrUnderage          = errors.New("user is below the minimum age")
)

// Session data keys
const (
	dataGroupID  = "group_id"
	dataName     = "name"
	dataUsername = "username"
)

const minNameLength = 2

// Config holds configuration for the registration service
type Config struct {
	// Timezone is the bot's operating timezone
	Timezone *time.Location

	// MinAgeYears rejects full birth dates implying a younger user;
	// zero disables the policy
	MinAgeYears int
}

// service implements the Service interface
type service struct {
	config         *Config
	userRepo       userRepo.Repository
	groupAdminRepo groupadminRepo.Repository
	sessions       sessionRepo.Store
	clock          clock.Clock
}

// NewService creates a new registration service
func NewService(cfg *Config, userRepository userRepo.Repository, groupAdminRepository groupadminRepo.Repository, sessions sessionRepo.Store, clk clock.Clock) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Timezone == nil {
		return nil, errors.New("timezone cannot be nil")
	}

	if userRepository == nil {
		return nil, errors.New("user repository cannot be nil")
	}

	if groupAdminRepository == nil {
		return nil, errors.New("group admin repository cannot be nil")
	}

	if sessions == nil {
		return nil, errors.New("session store cannot be nil")
	}

	if clk == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &service{
		config:         cfg,
		userRepo:       userRepository,
		groupAdminRepo: groupAdminRepository,
		sessions:       sessions,
		clock:          clk,
	}, nil
}

// Start enters the registration machine for an unregistered user
func (s *service) Start(ctx context.Context, input *StartInput) error {
	if input == nil || input.UserID == 0 || input.GroupID == 0 {
		return errors.New("input, user ID and group ID cannot be empty")
	}

	_, err := s.userRepo.GetByTelegramID(ctx, &userRepo.GetByTelegramIDInput{TelegramID: input.UserID})
	if err == nil {
		return ErrAlreadyRegistered
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		return fmt.Errorf("failed to look up user %d: %w", input.UserID, err)
	}

	_, err = s.groupAdminRepo.GetByChatID(ctx, &groupadminRepo.GetByChatIDInput{ChatID: input.GroupID})
	if err != nil {
		if errors.Is(err, groupadminRepo.ErrAdminNotFound) {
			return ErrSponsorNotAdmin
		}
		return fmt.Errorf("failed to look up admin record for chat %d: %w", input.GroupID, err)
	}

	if err := s.sessions.UpdateData(ctx, input.UserID, map[string]string{
		dataGroupID:  strconv.FormatInt(input.GroupID, 10),
		dataUsername: input.Username,
	}); err != nil {
		return s.failClosed(ctx, input.UserID, fmt.Errorf("failed to store registration data: %w", err))
	}

	if err := s.sessions.SetState(ctx, input.UserID, StateAwaitingName); err != nil {
		return s.failClosed(ctx, input.UserID, fmt.Errorf("failed to set registration state: %w", err))
	}

	return nil
}

// SubmitName handles the AwaitingName step
func (s *service) SubmitName(ctx context.Context, input *SubmitNameInput) error {
	if input == nil || input.UserID == 0 {
		return errors.New("input and user ID cannot be empty")
	}

	name := strings.TrimSpace(input.Name)
	if utf8.RuneCountInString(name) < minNameLength {
		return ErrNameTooShort
	}

	if err := s.sessions.UpdateData(ctx, input.UserID, map[string]string{dataName: name}); err != nil {
		return s.failClosed(ctx, input.UserID, fmt.Errorf("failed to store name: %w", err))
	}

	if err := s.sessions.SetState(ctx, input.UserID, StateAwaitingBirthDate); err != nil {
		return s.failClosed(ctx, input.UserID, fmt.Errorf("failed to set registration state: %w", err))
	}

	return nil
}

// SubmitBirthDate handles the AwaitingBirthDate step and completes
// the registration
func (s *service) SubmitBirthDate(ctx context.Context, input *SubmitBirthDateInput) (*SubmitBirthDateOutput, error) {
	if input == nil || input.UserID == 0 {
		return nil, errors.New("input and user ID cannot be empty")
	}

	birthDate, err := s.parseBirthDate(input.Text)
	if err != nil {
		return nil, err
	}

	data, err := s.sessions.GetData(ctx, input.UserID)
	if err != nil {
		return nil, s.failClosed(ctx, input.UserID, fmt.Errorf("failed to read registration data: %w", err))
	}

	groupID, err := strconv.ParseInt(data[dataGroupID], 10, 64)
	if err != nil {
		return nil, s.failClosed(ctx, input.UserID, fmt.Errorf("registration data has no valid group ID: %w", err))
	}

	// The sponsor's admin rights may have been revoked mid-conversation
	_, err = s.groupAdminRepo.GetByChatID(ctx, &groupadminRepo.GetByChatIDInput{ChatID: groupID})
	if err != nil {
		if errors.Is(err, groupadminRepo.ErrAdminNotFound) {
			return nil, s.failClosed(ctx, input.UserID, ErrSponsorNotAdmin)
		}
		return nil, s.failClosed(ctx, input.UserID, fmt.Errorf("failed to look up admin record for chat %d: %w", groupID, err))
	}

	out, err := s.userRepo.CreateOrGet(ctx, &userRepo.CreateOrGetInput{
		User: &models.User{
			TelegramID:            input.UserID,
			Username:              data[dataUsername],
			Name:                  data[dataName],
			BirthDate:             birthDate,
			RegisteredFromGroupID: groupID,
			CreatedAt:             s.clock.Now(),
		},
	})
	if err != nil {
		return nil, s.failClosed(ctx, input.UserID, fmt.Errorf("failed to create user %d: %w", input.UserID, err))
	}

	if err := s.sessions.Clear(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to clear registration state: %w", err)
	}

	return &SubmitBirthDateOutput{User: out.User}, nil
}

// failClosed abandons the conversation so an unclassified failure never
// leaves the machine dangling in a half-written state. The clear itself
// is best-effort: the session expires on its own either way.
func (s *service) failClosed(ctx context.Context, userID int64, err error) error {
	if clearErr := s.sessions.Clear(ctx, userID); clearErr != nil {
		log.Printf("registration: failed to clear state for user %d: %v", userID, clearErr)
	}
	return err
}

// parseBirthDate accepts a skip token, "DD.MM" with the year normalized
// to the unknown-year sentinel, or a full "DD.MM.YYYY"
func (s *service) parseBirthDate(text string) (*time.Time, error) {
	text = strings.TrimSpace(text)

	if isSkipToken(text) {
		return nil, nil
	}

	if partial, err := time.Parse("02.01", text); err == nil {
		birth := time.Date(models.BirthYearUnknown, partial.Month(), partial.Day(), 0, 0, 0, 0, time.UTC)
		// The parse accepts 29.02 (its implicit year is a leap year), but
		// the unknown-year sentinel is not one and time.Date would roll
		// the date over to March 1
		if birth.Month() != partial.Month() || birth.Day() != partial.Day() {
			return nil, ErrInvalidBirthDate
		}
		return &birth, nil
	}

	full, err := time.Parse("02.01.2006", text)
	if err != nil {
		return nil, ErrInvalidBirthDate
	}

	if s.config.MinAgeYears > 0 {
		cutoff := s.clock.Now().In(s.config.Timezone).AddDate(-s.config.MinAgeYears, 0, 0)
		if full.After(cutoff) {
			return nil, ErrUnderage
		}
	}

	birth := time.Date(full.Year(), full.Month(), full.Day(), 0, 0, 0, 0, time.UTC)
	return &birth, nil
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
