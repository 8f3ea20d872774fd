package membership_test

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
	"github.com/dvigun/beerbot/internal/services/membership"
	"github.com/dvigun/beerbot/internal/services/membership/mocks"
)

type MembershipServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockAdminRepo *groupadminMocks.MockRepository
	mockTransport *mocks.MockTransport
	mockClock     *clockMocks.MockClock
	service       membership.Service
	ctx           context.Context

	testNow     time.Time
	testChatID  int64
	testActorID int64
}

func (s *MembershipServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAdminRepo = groupadminMocks.NewMockRepository(s.mockCtrl)
	s.mockTransport = mocks.NewMockTransport(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	s.testChatID = -200
	s.testActorID = 50

	s.mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()

	svc, err := membership.NewService(s.mockAdminRepo, s.mockTransport, s.mockClock)
	s.Require().NoError(err)
	s.service = svc
}

func (s *MembershipServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMembershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}

func (s *MembershipServiceTestSuite) promotion() *membership.ChangeInput {
	return &membership.ChangeInput{
		ChatID:       s.testChatID,
		ActorID:      s.testActorID,
		OldStatus:    membership.StatusMember,
		NewStatus:    membership.StatusAdministrator,
		SubjectIsBot: true,
	}
}

func (s *MembershipServiceTestSuite) TestIgnoresChangesAboutOtherUsers() {
	input := s.promotion()
	input.SubjectIsBot = false

	out, err := s.service.HandleChange(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(membership.ActionNone, out.Action)
}

func (s *MembershipServiceTestSuite) TestIgnoresNonTransitions() {
	input := s.promotion()
	input.OldStatus = membership.StatusAdministrator

	out, err := s.service.HandleChange(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(membership.ActionNone, out.Action)
}

func (s *MembershipServiceTestSuite) TestPromotionRecordsAdmin() {
	s.mockTransport.EXPECT().
		GetChatMember(s.ctx, s.testChatID, s.testActorID).
		Return(membership.StatusCreator, nil)

	s.mockAdminRepo.EXPECT().
		CreateOrGet(s.ctx, &groupadminRepo.CreateOrGetInput{
			Admin: &models.GroupAdmin{
				ChatID:    s.testChatID,
				UserID:    s.testActorID,
				CreatedAt: s.testNow,
			},
		}).
		Return(&groupadminRepo.CreateOrGetOutput{
			Admin: &models.GroupAdmin{ChatID: s.testChatID, UserID: s.testActorID},
		}, nil)

	out, err := s.service.HandleChange(s.ctx, s.promotion())
	s.Require().NoError(err)
	s.Equal(membership.ActionPromoted, out.Action)
}

func (s *MembershipServiceTestSuite) TestDuplicatePromotionIsIdempotent() {
	s.mockTransport.EXPECT().
		GetChatMember(s.ctx, s.testChatID, s.testActorID).
		Return(membership.StatusAdministrator, nil)

	s.mockAdminRepo.EXPECT().
		CreateOrGet(s.ctx, gomock.Any()).
		Return(&groupadminRepo.CreateOrGetOutput{
			Admin:          &models.GroupAdmin{ChatID: s.testChatID, UserID: 99},
			AlreadyExisted: true,
		}, nil)

	out, err := s.service.HandleChange(s.ctx, s.promotion())
	s.Require().NoError(err)
	s.Equal(membership.ActionPromoted, out.Action)
}

func (s *MembershipServiceTestSuite) TestActorVerificationFailureAbortsSilently() {
	s.mockTransport.EXPECT().
		GetChatMember(s.ctx, s.testChatID, s.testActorID).
		Return("", errors.New("forbidden: bot is not a member"))

	out, err := s.service.HandleChange(s.ctx, s.promotion())
	s.Require().NoError(err)
	s.Equal(membership.ActionNone, out.Action)
}

func (s *MembershipServiceTestSuite) TestNonAdminActorIsIgnored() {
	s.mockTransport.EXPECT().
		GetChatMember(s.ctx, s.testChatID, s.testActorID).
		Return(membership.StatusMember, nil)

	out, err := s.service.HandleChange(s.ctx, s.promotion())
	s.Require().NoError(err)
	s.Equal(membership.ActionNone, out.Action)
}

func (s *MembershipServiceTestSuite) TestDemotionRemovesRecord() {
	input := s.promotion()
	input.OldStatus = membership.StatusAdministrator
	input.NewStatus = membership.StatusKicked

	s.mockTransport.EXPECT().
		GetChatMember(s.ctx, s.testChatID, s.testActorID).
		Return(membership.StatusCreator, nil)

	s.mockAdminRepo.EXPECT().
		Delete(s.ctx, &groupadminRepo.DeleteInput{ChatID: s.testChatID}).
		Return(&groupadminRepo.DeleteOutput{Deleted: true}, nil)

	out, err := s.service.HandleChange(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(membership.ActionDemoted, out.Action)
	s.True(out.AdminRemoved)
}

func (s *MembershipServiceTestSuite) TestDemotionWithoutRecordSendsNothing() {
	input := s.promotion()
	input.OldStatus = membership.StatusAdministrator
	input.NewStatus = membership.StatusLeft

	s.mockTransport.EXPECT().
		GetChatMember(s.ctx, s.testChatID, s.testActorID).
		Return(membership.StatusCreator, nil)

	s.mockAdminRepo.EXPECT().
		Delete(s.ctx, gomock.Any()).
		Return(&groupadminRepo.DeleteOutput{Deleted: false}, nil)

	out, err := s.service.HandleChange(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(membership.ActionDemoted, out.Action)
	s.False(out.AdminRemoved)
}
