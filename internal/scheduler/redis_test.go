package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	mockClock "github.com/dvigun/beerbot/internal/common/clock/mocks"
	"github.com/dvigun/beerbot/internal/common/uuid"
)

type SchedulerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mr        *miniredis.Miniredis
	client    *redis.Client
	scheduler Scheduler
	mockClock *mockClock.MockClock
	testNow   time.Time
}

func (s *SchedulerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	sched, err := NewRedis(&Config{
		RedisClient: s.client,
		UUID:        uuid.New(),
	})
	s.Require().NoError(err)
	s.scheduler = sched

	s.mockClock = mockClock.NewMockClock(s.ctrl)
	s.testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.ctrl.Finish()
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) newWorker() *Worker {
	worker, err := NewWorker(&WorkerConfig{
		RedisClient: s.client,
		Clock:       s.mockClock,
	})
	s.Require().NoError(err)
	return worker
}

func (s *SchedulerTestSuite) TestSubmitStoresJob() {
	fireAt := s.testNow.Add(time.Hour)

	out, err := s.scheduler.Submit(context.Background(), &SubmitInput{
		TaskName: TaskUserNotification,
		Payload:  map[string]string{PayloadEventID: "7"},
		FireAt:   fireAt,
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(out.JobID)

	score, err := s.client.ZScore(context.Background(), scheduleKey, out.JobID).Result()
	s.Require().NoError(err)
	s.Equal(float64(fireAt.Unix()), score)
}

func (s *SchedulerTestSuite) TestWorkerRunsDueJob() {
	_, err := s.scheduler.Submit(context.Background(), &SubmitInput{
		TaskName: TaskUserNotification,
		Payload:  map[string]string{PayloadEventID: "7"},
		FireAt:   s.testNow.Add(-time.Minute),
	})
	s.Require().NoError(err)

	var gotPayload map[string]string
	worker := s.newWorker()
	worker.Register(TaskUserNotification, func(ctx context.Context, payload map[string]string) error {
		gotPayload = payload
		return nil
	})

	s.mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()

	err = worker.processDue(context.Background())
	s.Require().NoError(err)
	s.Require().NotNil(gotPayload)
	s.Equal("7", gotPayload[PayloadEventID])

	// The schedule and the payload are both gone
	count, err := s.client.ZCard(context.Background(), scheduleKey).Result()
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *SchedulerTestSuite) TestWorkerSkipsFutureJob() {
	_, err := s.scheduler.Submit(context.Background(), &SubmitInput{
		TaskName: TaskUserNotification,
		Payload:  map[string]string{PayloadEventID: "7"},
		FireAt:   s.testNow.Add(time.Hour),
	})
	s.Require().NoError(err)

	called := false
	worker := s.newWorker()
	worker.Register(TaskUserNotification, func(ctx context.Context, payload map[string]string) error {
		called = true
		return nil
	})

	s.mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()

	err = worker.processDue(context.Background())
	s.Require().NoError(err)
	s.False(called)
}

func (s *SchedulerTestSuite) TestFailedJobIsRescheduled() {
	out, err := s.scheduler.Submit(context.Background(), &SubmitInput{
		TaskName: TaskBartenderSummary,
		Payload:  map[string]string{PayloadEventID: "7"},
		FireAt:   s.testNow.Add(-time.Minute),
	})
	s.Require().NoError(err)

	calls := 0
	worker := s.newWorker()
	worker.Register(TaskBartenderSummary, func(ctx context.Context, payload map[string]string) error {
		calls++
		if calls == 1 {
			return errors.New("telegram unavailable")
		}
		return nil
	})

	s.mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()

	err = worker.processDue(context.Background())
	s.Require().NoError(err)
	s.Equal(1, calls)

	// The job went back on the schedule one retry delay in the future
	score, err := s.client.ZScore(context.Background(), scheduleKey, out.JobID).Result()
	s.Require().NoError(err)
	s.Equal(float64(s.testNow.Add(defaultRetryDelay).Unix()), score)

	// Not due yet on the next poll
	err = worker.processDue(context.Background())
	s.Require().NoError(err)
	s.Equal(1, calls)
}
