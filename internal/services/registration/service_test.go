package registration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/dvigun/beerbot/internal/common/clock/mocks"
	"github.com/dvigun/beerbot/internal/models"
	groupadminRepo "github.com/dvigun/beerbot/internal/repositories/groupadmin"
	groupadminMocks "github.com/dvigun/beerbot/internal/repositories/groupadmin/mocks"
	sessionMocks "github.com/dvigun/beerbot/internal/repositories/session/mocks"
	userRepo "github.com/dvigun/beerbot/internal/repositories/user"
	userMocks "github.com/dvigun/beerbot/internal/repositories/user/mocks"
)

type RegistrationServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUserRepo   *userMocks.MockRepository
	mockAdminRepo  *groupadminMocks.MockRepository
	mockSessions   *sessionMocks.MockStore
	mockClock      *clockMocks.MockClock
	service        Service
	ctx            context.Context
	timezone       *time.Location
	testNow        time.Time
	testUserID     int64
	testGroupID    int64
}

func (s *RegistrationServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.mockAdminRepo = groupadminMocks.NewMockRepository(s.mockCtrl)
	s.mockSessions = sessionMocks.NewMockStore(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	var err error
	s.timezone, err = time.LoadLocation("Europe/Moscow")
	s.Require().NoError(err)

	s.testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, s.timezone)
	s.testUserID = 100
	s.testGroupID = -200

	s.mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()

	svc, err := NewService(&Config{
		Timezone:    s.timezone,
		MinAgeYears: 18,
	}, s.mockUserRepo, s.mockAdminRepo, s.mockSessions, s.mockClock)
	s.Require().NoError(err)
	s.service = svc
}

func (s *RegistrationServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRegistrationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationServiceTestSuite))
}

func (s *RegistrationServiceTestSuite) expectUserNotFound() {
	s.mockUserRepo.EXPECT().
		GetByTelegramID(s.ctx, &userRepo.GetByTelegramIDInput{TelegramID: s.testUserID}).
		Return(nil, userRepo.ErrUserNotFound)
}

func (s *RegistrationServiceTestSuite) expectSponsorIsAdmin() {
	s.mockAdminRepo.EXPECT().
		GetByChatID(s.ctx, &groupadminRepo.GetByChatIDInput{ChatID: s.testGroupID}).
		Return(&models.GroupAdmin{ChatID: s.testGroupID, UserID: 1}, nil)
}

func (s *RegistrationServiceTestSuite) TestStartEntersMachine() {
	s.expectUserNotFound()
	s.expectSponsorIsAdmin()

	s.mockSessions.EXPECT().UpdateData(s.ctx, s.testUserID, map[string]string{
		"group_id": "-200",
		"username": "ivan",
	}).Return(nil)
	s.mockSessions.EXPECT().SetState(s.ctx, s.testUserID, StateAwaitingName).Return(nil)

	err := s.service.Start(s.ctx, &StartInput{
		UserID:   s.testUserID,
		Username: "ivan",
		GroupID:  s.testGroupID,
	})
	s.Require().NoError(err)
}

func (s *RegistrationServiceTestSuite) TestStartAlreadyRegistered() {
	s.mockUserRepo.EXPECT().
		GetByTelegramID(s.ctx, gomock.Any()).
		Return(&models.User{TelegramID: s.testUserID}, nil)

	err := s.service.Start(s.ctx, &StartInput{UserID: s.testUserID, GroupID: s.testGroupID})
	s.Require().ErrorIs(err, ErrAlreadyRegistered)
}

func (s *RegistrationServiceTestSuite) TestStartSponsorNotAdmin() {
	s.expectUserNotFound()
	s.mockAdminRepo.EXPECT().
		GetByChatID(s.ctx, gomock.Any()).
		Return(nil, groupadminRepo.ErrAdminNotFound)

	err := s.service.Start(s.ctx, &StartInput{UserID: s.testUserID, GroupID: s.testGroupID})
	s.Require().ErrorIs(err, ErrSponsorNotAdmin)
}

func (s *RegistrationServiceTestSuite) TestSubmitNameTooShortKeepsState() {
	err := s.service.SubmitName(s.ctx, &SubmitNameInput{UserID: s.testUserID, Name: "  и  "})
	s.Require().ErrorIs(err, ErrNameTooShort)
}

func (s *RegistrationServiceTestSuite) TestSubmitNameAdvances() {
	s.mockSessions.EXPECT().
		UpdateData(s.ctx, s.testUserID, map[string]string{"name": "Иван Петров"}).
		Return(nil)
	s.mockSessions.EXPECT().SetState(s.ctx, s.testUserID, StateAwaitingBirthDate).Return(nil)

	err := s.service.SubmitName(s.ctx, &SubmitNameInput{UserID: s.testUserID, Name: " Иван Петров "})
	s.Require().NoError(err)
}

func (s *RegistrationServiceTestSuite) sessionData() map[string]string {
	return map[string]string{
		"group_id": "-200",
		"username": "ivan",
		"name":     "Иван Петров",
	}
}

func (s *RegistrationServiceTestSuite) expectCompletion(expectBirthDate *time.Time) {
	s.mockSessions.EXPECT().GetData(s.ctx, s.testUserID).Return(s.sessionData(), nil)
	s.expectSponsorIsAdmin()

	s.mockUserRepo.EXPECT().
		CreateOrGet(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *userRepo.CreateOrGetInput) (*userRepo.CreateOrGetOutput, error) {
			s.Equal(s.testUserID, input.User.TelegramID)
			s.Equal("Иван Петров", input.User.Name)
			s.Equal(s.testGroupID, input.User.RegisteredFromGroupID)
			if expectBirthDate == nil {
				s.Nil(input.User.BirthDate)
			} else {
				s.Require().NotNil(input.User.BirthDate)
				s.Equal(*expectBirthDate, *input.User.BirthDate)
			}
			return &userRepo.CreateOrGetOutput{User: input.User}, nil
		})
	s.mockSessions.EXPECT().Clear(s.ctx, s.testUserID).Return(nil)
}

func (s *RegistrationServiceTestSuite) TestSubmitBirthDateSkipToken() {
	s.expectCompletion(nil)

	out, err := s.service.SubmitBirthDate(s.ctx, &SubmitBirthDateInput{UserID: s.testUserID, Text: "НЕТ"})
	s.Require().NoError(err)
	s.Nil(out.User.BirthDate)
}

func (s *RegistrationServiceTestSuite) TestSubmitBirthDatePartialUsesSentinelYear() {
	expected := time.Date(models.BirthYearUnknown, 3, 15, 0, 0, 0, 0, time.UTC)
	s.expectCompletion(&expected)

	out, err := s.service.SubmitBirthDate(s.ctx, &SubmitBirthDateInput{UserID: s.testUserID, Text: "15.03"})
	s.Require().NoError(err)
	s.Equal(models.BirthYearUnknown, out.User.BirthDate.Year())
}

func (s *RegistrationServiceTestSuite) TestSubmitBirthDateFull() {
	expected := time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)
	s.expectCompletion(&expected)

	_, err := s.service.SubmitBirthDate(s.ctx, &SubmitBirthDateInput{UserID: s.testUserID, Text: "15.03.1990"})
	s.Require().NoError(err)
}

func (s *RegistrationServiceTestSuite) TestSubmitBirthDateInvalidFormat() {
	_, err := s.service.SubmitBirthDate(s.ctx, &SubmitBirthDateInput{UserID: s.testUserID, Text: "март 1990"})
	s.Require().ErrorIs(err, ErrInvalidBirthDate)
}

func (s *RegistrationServiceTestSuite) TestSubmitBirthDateUnderage() {
	// 17 years old at the test clock
	_, err := s.service.SubmitBirthDate(s.ctx, &SubmitBirthDateInput{UserID: s.testUserID, Text: "15.03.2008"})
	s.Require().ErrorIs(err, ErrUnderage)
}

func (s *RegistrationServiceTestSuite) TestSubmitBirthDateSponsorRevokedMidConversation() {
	s.mockSessions.EXPECT().GetData(s.ctx, s.testUserID).Return(s.sessionData(), nil)
	s.mockAdminRepo.EXPECT().
		GetByChatID(s.ctx, gomock.Any()).
		Return(nil, groupadminRepo.ErrAdminNotFound)
	s.mockSessions.EXPECT().Clear(s.ctx, s.testUserID).Return(nil)

	// No user is created
	_, err := s.service.SubmitBirthDate(s.ctx, &SubmitBirthDateInput{UserID: s.testUserID, Text: "-"})
	s.Require().ErrorIs(err, ErrSponsorNotAdmin)
}

func (s *RegistrationServiceTestSuite) TestSubmitBirthDateRejectsPartialLeapDay() {
	// 29.02 parses (the layout's implicit year is a leap year) but the
	// unknown-year sentinel has no February 29
	_, err := s.service.SubmitBirthDate(s.ctx, &SubmitBirthDateInput{UserID: s.testUserID, Text: "29.02"})
	s.Require().ErrorIs(err, ErrInvalidBirthDate)
}

func (s *RegistrationServiceTestSuite) TestSubmitBirthDateFullLeapDayAccepted() {
	expected := time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)
	s.expectCompletion(&expected)

	_, err := s.service.SubmitBirthDate(s.ctx, &SubmitBirthDateInput{UserID: s.testUserID, Text: "29.02.2000"})
	s.Require().NoError(err)
}

func (s *RegistrationServiceTestSuite) TestSubmitBirthDateStorageFailureAbandonsState() {
	s.mockSessions.EXPECT().GetData(s.ctx, s.testUserID).Return(s.sessionData(), nil)
	s.expectSponsorIsAdmin()
	s.mockUserRepo.EXPECT().
		CreateOrGet(s.ctx, gomock.Any()).
		Return(nil, errors.New("database is locked"))

	// The half-finished conversation is abandoned, not left for a retry
	s.mockSessions.EXPECT().Clear(s.ctx, s.testUserID).Return(nil)

	_, err := s.service.SubmitBirthDate(s.ctx, &SubmitBirthDateInput{UserID: s.testUserID, Text: "-"})
	s.Require().Error(err)
}

func (s *RegistrationServiceTestSuite) TestSubmitBirthDateDuplicateRaceIsIdempotent() {
	s.mockSessions.EXPECT().GetData(s.ctx, s.testUserID).Return(s.sessionData(), nil)
	s.expectSponsorIsAdmin()

	existing := &models.User{TelegramID: s.testUserID, Name: "Иван Петров"}
	s.mockUserRepo.EXPECT().
		CreateOrGet(s.ctx, gomock.Any()).
		Return(&userRepo.CreateOrGetOutput{User: existing, AlreadyExisted: true}, nil)
	s.mockSessions.EXPECT().Clear(s.ctx, s.testUserID).Return(nil)

	out, err := s.service.SubmitBirthDate(s.ctx, &SubmitBirthDateInput{UserID: s.testUserID, Text: "-"})
	s.Require().NoError(err)
	s.Equal(existing, out.User)
}
