package beerselection

import (
	"context"
	"database/sql"
	"sync"
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
	// The in-memory database lives per connection; serialize access so
	// concurrent test goroutines share one schema.
	db.SetMaxOpenConns(1)
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

func (s *SQLiteRepositoryTestSuite) testSelection() *models.BeerSelection {
	return &models.BeerSelection{
		UserID:     100,
		EventID:    1,
		ChatID:     -100,
		BeerChoice: "IPA",
		CreatedAt:  s.testNow,
	}
}

func (s *SQLiteRepositoryTestSuite) TestCreateAndGet() {
	out, err := s.repo.CreateOrGet(context.Background(), &CreateOrGetInput{Selection: s.testSelection()})
	s.Require().NoError(err)
	s.False(out.AlreadyExisted)
	s.NotZero(out.Selection.ID)

	got, err := s.repo.GetByUserAndEvent(context.Background(), &GetByUserAndEventInput{UserID: 100, EventID: 1})
	s.Require().NoError(err)
	s.Equal("IPA", got.BeerChoice)
}

func (s *SQLiteRepositoryTestSuite) TestDuplicateSelectionReturnsExisting() {
	first, err := s.repo.CreateOrGet(context.Background(), &CreateOrGetInput{Selection: s.testSelection()})
	s.Require().NoError(err)
	s.False(first.AlreadyExisted)

	dup := s.testSelection()
	dup.BeerChoice = "Stout"

	second, err := s.repo.CreateOrGet(context.Background(), &CreateOrGetInput{Selection: dup})
	s.Require().NoError(err)
	s.True(second.AlreadyExisted)
	s.Equal("IPA", second.Selection.BeerChoice)
}

func (s *SQLiteRepositoryTestSuite) TestConcurrentCreateKeepsOneRow() {
	const attempts = 8

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.repo.CreateOrGet(context.Background(), &CreateOrGetInput{Selection: s.testSelection()})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		s.Require().NoError(err)
	}

	out, err := s.repo.CountByChoice(context.Background(), &CountByChoiceInput{EventID: 1})
	s.Require().NoError(err)
	s.Equal(1, out.Counts["IPA"])
	s.Equal(1, out.Participants)
}

func (s *SQLiteRepositoryTestSuite) TestSameUserDifferentEvents() {
	for _, eventID := range []int64{1, 2} {
		sel := s.testSelection()
		sel.EventID = eventID
		_, err := s.repo.CreateOrGet(context.Background(), &CreateOrGetInput{Selection: sel})
		s.Require().NoError(err)
	}

	got, err := s.repo.GetByUserAndEvent(context.Background(), &GetByUserAndEventInput{UserID: 100, EventID: 2})
	s.Require().NoError(err)
	s.Equal(int64(2), got.EventID)
}

func (s *SQLiteRepositoryTestSuite) TestCountByChoice() {
	selections := []struct {
		userID int64
		choice string
		at     time.Time
	}{
		{100, "IPA", s.testNow},
		{101, "IPA", s.testNow.Add(time.Minute)},
		{102, "Stout", s.testNow.Add(2 * time.Minute)},
		{103, "Stout", s.testNow.Add(time.Hour)}, // outside the window below
	}
	for _, sel := range selections {
		_, err := s.repo.CreateOrGet(context.Background(), &CreateOrGetInput{
			Selection: &models.BeerSelection{
				UserID:     sel.userID,
				EventID:    1,
				ChatID:     -100,
				BeerChoice: sel.choice,
				CreatedAt:  sel.at,
			},
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.CountByChoice(context.Background(), &CountByChoiceInput{EventID: 1})
	s.Require().NoError(err)
	s.Equal(2, out.Counts["IPA"])
	s.Equal(2, out.Counts["Stout"])
	s.Equal(4, out.Participants)

	windowed, err := s.repo.CountByChoice(context.Background(), &CountByChoiceInput{
		EventID: 1,
		From:    s.testNow,
		To:      s.testNow.Add(30 * time.Minute),
	})
	s.Require().NoError(err)
	s.Equal(2, windowed.Counts["IPA"])
	s.Equal(1, windowed.Counts["Stout"])
	s.Equal(3, windowed.Participants)
}

func (s *SQLiteRepositoryTestSuite) TestGetNonExistentSelection() {
	_, err := s.repo.GetByUserAndEvent(context.Background(), &GetByUserAndEventInput{UserID: 1, EventID: 1})
	s.Require().ErrorIs(err, ErrSelectionNotFound)
}
