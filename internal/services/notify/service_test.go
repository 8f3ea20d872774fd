package notify_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/dvigun/beerbot/internal/models"
	beerselectionRepo "github.com/dvigun/beerbot/internal/repositories/beerselection"
	beerselectionMocks "github.com/dvigun/beerbot/internal/repositories/beerselection/mocks"
	eventRepo "github.com/dvigun/beerbot/internal/repositories/event"
	eventMocks "github.com/dvigun/beerbot/internal/repositories/event/mocks"
	userRepo "github.com/dvigun/beerbot/internal/repositories/user"
	userMocks "github.com/dvigun/beerbot/internal/repositories/user/mocks"
	"github.com/dvigun/beerbot/internal/services/notify"
	notifyMocks "github.com/dvigun/beerbot/internal/services/notify/mocks"
)

type NotifyServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockEventRepo *eventMocks.MockRepository
	mockUserRepo  *userMocks.MockRepository
	mockBeerRepo  *beerselectionMocks.MockRepository
	mockTransport *notifyMocks.MockTransport
	service       notify.Service
	ctx           context.Context

	timezone  *time.Location
	testEvent *models.Event
}

func (s *NotifyServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockEventRepo = eventMocks.NewMockRepository(s.mockCtrl)
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.mockBeerRepo = beerselectionMocks.NewMockRepository(s.mockCtrl)
	s.mockTransport = notifyMocks.NewMockTransport(s.mockCtrl)
	s.ctx = context.Background()

	var err error
	s.timezone, err = time.LoadLocation("Europe/Moscow")
	s.Require().NoError(err)

	svc, err := notify.NewService(&notify.Config{
		Timezone:         s.timezone,
		SelectionWindow:  30 * time.Minute,
		DefaultBeerLabel: "Лагер",
		BartenderChatID:  999,
	}, s.mockEventRepo, s.mockUserRepo, s.mockBeerRepo, s.mockTransport)
	s.Require().NoError(err)
	s.service = svc

	s.testEvent = &models.Event{
		ID:            7,
		Name:          "Пятничные посиделки",
		EventDate:     time.Date(2025, 6, 20, 0, 0, 0, 0, s.timezone),
		EventTime:     "20:00",
		ChatID:        -100,
		HasBeerChoice: true,
		BeerOption1:   "IPA",
		BeerOption2:   "Stout",
	}
}

func (s *NotifyServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNotifyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotifyServiceTestSuite))
}

func (s *NotifyServiceTestSuite) TestNotifyParticipantsTalliesFailures() {
	s.mockEventRepo.EXPECT().
		Get(s.ctx, &eventRepo.GetInput{EventID: 7}).
		Return(s.testEvent, nil)

	s.mockUserRepo.EXPECT().
		ListByGroupID(s.ctx, &userRepo.ListByGroupIDInput{GroupID: -100}).
		Return(&userRepo.ListByGroupIDOutput{Users: []*models.User{
			{TelegramID: 1},
			{TelegramID: 2},
			{TelegramID: 3},
		}}, nil)

	s.mockTransport.EXPECT().
		Send(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *notify.Message) error {
			if msg.ChatID == 2 {
				return errors.New("blocked by user")
			}
			return nil
		}).
		Times(3)

	out, err := s.service.NotifyParticipants(s.ctx, &notify.NotifyParticipantsInput{EventID: 7})
	s.Require().NoError(err)
	s.Equal(2, out.Sent)
	s.Equal(1, out.Failed)
}

func (s *NotifyServiceTestSuite) TestNotifyParticipantsAttachesImage() {
	event := *s.testEvent
	event.ImageFileID = "file-123"

	s.mockEventRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&event, nil)

	s.mockUserRepo.EXPECT().
		ListByGroupID(s.ctx, gomock.Any()).
		Return(&userRepo.ListByGroupIDOutput{Users: []*models.User{{TelegramID: 1}}}, nil)

	s.mockTransport.EXPECT().
		Send(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *notify.Message) error {
			s.Equal("file-123", msg.ImageFileID)
			return nil
		})

	_, err := s.service.NotifyParticipants(s.ctx, &notify.NotifyParticipantsInput{EventID: 7})
	s.Require().NoError(err)
}

func (s *NotifyServiceTestSuite) TestBartenderSummaryCountsSelectionWindow() {
	s.mockEventRepo.EXPECT().
		Get(s.ctx, &eventRepo.GetInput{EventID: 7}).
		Return(s.testEvent, nil)

	s.mockEventRepo.EXPECT().
		MarkBartenderSent(s.ctx, &eventRepo.MarkBartenderSentInput{EventID: 7}).
		Return(&eventRepo.MarkBartenderSentOutput{AlreadySent: false}, nil)

	start := time.Date(2025, 6, 20, 20, 0, 0, 0, s.timezone)
	s.mockBeerRepo.EXPECT().
		CountByChoice(s.ctx, &beerselectionRepo.CountByChoiceInput{
			EventID: 7,
			From:    start.Add(-30 * time.Minute),
			To:      start,
		}).
		Return(&beerselectionRepo.CountByChoiceOutput{
			Counts:       map[string]int{"IPA": 3, "Stout": 2},
			Participants: 5,
		}, nil)

	s.mockTransport.EXPECT().
		Send(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *notify.Message) error {
			s.Equal(int64(999), msg.ChatID)
			s.Contains(msg.Text, "IPA: 3")
			s.Contains(msg.Text, "Stout: 2")
			s.Contains(msg.Text, "участников: 5")
			return nil
		})

	err := s.service.BartenderSummary(s.ctx, &notify.BartenderSummaryInput{EventID: 7})
	s.Require().NoError(err)
}

func (s *NotifyServiceTestSuite) TestBartenderSummaryUsesDefaultLabel() {
	event := *s.testEvent
	event.HasBeerChoice = false
	event.BeerOption1 = ""
	event.BeerOption2 = ""

	s.mockEventRepo.EXPECT().Get(s.ctx, gomock.Any()).Return(&event, nil)
	s.mockEventRepo.EXPECT().
		MarkBartenderSent(s.ctx, gomock.Any()).
		Return(&eventRepo.MarkBartenderSentOutput{}, nil)
	s.mockBeerRepo.EXPECT().
		CountByChoice(s.ctx, gomock.Any()).
		Return(&beerselectionRepo.CountByChoiceOutput{
			Counts:       map[string]int{"Лагер": 4},
			Participants: 4,
		}, nil)

	s.mockTransport.EXPECT().
		Send(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *notify.Message) error {
			s.Contains(msg.Text, "Лагер: 4")
			return nil
		})

	err := s.service.BartenderSummary(s.ctx, &notify.BartenderSummaryInput{EventID: 7})
	s.Require().NoError(err)
}

func (s *NotifyServiceTestSuite) TestBartenderSummaryListsStrayLabelsSorted() {
	s.mockEventRepo.EXPECT().Get(s.ctx, gomock.Any()).Return(s.testEvent, nil)
	s.mockEventRepo.EXPECT().
		MarkBartenderSent(s.ctx, gomock.Any()).
		Return(&eventRepo.MarkBartenderSentOutput{}, nil)
	s.mockBeerRepo.EXPECT().
		CountByChoice(s.ctx, gomock.Any()).
		Return(&beerselectionRepo.CountByChoiceOutput{
			Counts:       map[string]int{"IPA": 1, "Эль": 3, "Альт": 1, "Квас": 2},
			Participants: 7,
		}, nil)

	s.mockTransport.EXPECT().
		Send(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *notify.Message) error {
			// Configured options come first in their configured order,
			// stray labels after them in a stable sorted order
			s.Contains(msg.Text, "IPA: 1\nStout: 0\nАльт: 1\nКвас: 2\nЭль: 3\n")
			s.Contains(msg.Text, "Всего заказов: 7")
			return nil
		})

	err := s.service.BartenderSummary(s.ctx, &notify.BartenderSummaryInput{EventID: 7})
	s.Require().NoError(err)
}

func (s *NotifyServiceTestSuite) TestBartenderSummarySkipsDeletedEvent() {
	s.mockEventRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, eventRepo.ErrEventNotFound)

	err := s.service.BartenderSummary(s.ctx, &notify.BartenderSummaryInput{EventID: 7})
	s.Require().NoError(err)
}

func (s *NotifyServiceTestSuite) TestBartenderSummarySentOnlyOnce() {
	s.mockEventRepo.EXPECT().Get(s.ctx, gomock.Any()).Return(s.testEvent, nil)
	s.mockEventRepo.EXPECT().
		MarkBartenderSent(s.ctx, gomock.Any()).
		Return(&eventRepo.MarkBartenderSentOutput{AlreadySent: true}, nil)

	// No counting, no send
	err := s.service.BartenderSummary(s.ctx, &notify.BartenderSummaryInput{EventID: 7})
	s.Require().NoError(err)
}
