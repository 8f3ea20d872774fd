package event

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/suite"

	"github.com/dvigun/beerbot/internal/models"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	db      *sql.DB
	repo    Repository
	testNow time.Time
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	db, err := sql.Open("sqlite3", ":memory:")
	s.Require().NoError(err)
	s.db = db

	repo, err := NewSQLite(&Config{DB: db})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.db.Close()
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) testEvent() *models.Event {
	lat := 55.7558
	lon := 37.6173
	return &models.Event{
		Name:          "Pub Night",
		EventDate:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		EventTime:     "19:30",
		Latitude:      &lat,
		Longitude:     &lon,
		LocationName:  "Old Pub",
		Description:   "Monthly gathering",
		HasBeerChoice: true,
		BeerOption1:   "IPA",
		BeerOption2:   "Stout",
		CreatedBy:     7,
		ChatID:        -100,
		CreatedAt:     s.testNow,
	}
}

func (s *SQLiteRepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(context.Background(), &CreateInput{Event: s.testEvent()})
	s.Require().NoError(err)
	s.Require().NotZero(created.ID)

	got, err := s.repo.Get(context.Background(), &GetInput{EventID: created.ID})
	s.Require().NoError(err)
	s.Equal("Pub Night", got.Name)
	s.Equal("19:30", got.EventTime)
	s.True(got.HasBeerChoice)
	s.Equal("IPA", got.BeerOption1)
	s.Equal("Stout", got.BeerOption2)
	s.Require().NotNil(got.Latitude)
	s.InDelta(55.7558, *got.Latitude, 0.0001)
	s.False(got.BartenderSent)
}

func (s *SQLiteRepositoryTestSuite) TestCreateWithoutLocation() {
	e := s.testEvent()
	e.Latitude = nil
	e.Longitude = nil

	created, err := s.repo.Create(context.Background(), &CreateInput{Event: e})
	s.Require().NoError(err)

	got, err := s.repo.Get(context.Background(), &GetInput{EventID: created.ID})
	s.Require().NoError(err)
	s.Nil(got.Latitude)
	s.Nil(got.Longitude)
	s.False(got.HasLocation())
}

func (s *SQLiteRepositoryTestSuite) TestListUpcoming() {
	dates := []time.Time{
		time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),  // past
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), // today
		time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), // future
	}
	for _, d := range dates {
		e := s.testEvent()
		e.EventDate = d
		_, err := s.repo.Create(context.Background(), &CreateInput{Event: e})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListUpcoming(context.Background(), &ListUpcomingInput{From: s.testNow})
	s.Require().NoError(err)
	s.Require().Len(out.Events, 2)
	s.True(out.Events[0].EventDate.Before(out.Events[1].EventDate))
}

func (s *SQLiteRepositoryTestSuite) TestSetJobIDs() {
	created, err := s.repo.Create(context.Background(), &CreateInput{Event: s.testEvent()})
	s.Require().NoError(err)

	err = s.repo.SetJobIDs(context.Background(), &SetJobIDsInput{
		EventID:         created.ID,
		UserNotifyJobID: "job-user",
		BartenderJobID:  "job-bartender",
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(context.Background(), &GetInput{EventID: created.ID})
	s.Require().NoError(err)
	s.Equal("job-user", got.UserNotifyJobID)
	s.Equal("job-bartender", got.BartenderJobID)
}

func (s *SQLiteRepositoryTestSuite) TestSetJobIDsForMissingEvent() {
	err := s.repo.SetJobIDs(context.Background(), &SetJobIDsInput{EventID: 999, BartenderJobID: "x"})
	s.Require().ErrorIs(err, ErrEventNotFound)
}

func (s *SQLiteRepositoryTestSuite) TestMarkBartenderSentOnce() {
	created, err := s.repo.Create(context.Background(), &CreateInput{Event: s.testEvent()})
	s.Require().NoError(err)

	first, err := s.repo.MarkBartenderSent(context.Background(), &MarkBartenderSentInput{EventID: created.ID})
	s.Require().NoError(err)
	s.False(first.AlreadySent)

	second, err := s.repo.MarkBartenderSent(context.Background(), &MarkBartenderSentInput{EventID: created.ID})
	s.Require().NoError(err)
	s.True(second.AlreadySent)
}

func (s *SQLiteRepositoryTestSuite) TestGetNonExistentEvent() {
	_, err := s.repo.Get(context.Background(), &GetInput{EventID: 42})
	s.Require().ErrorIs(err, ErrEventNotFound)
}
