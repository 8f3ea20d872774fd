package user

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

func (s *SQLiteRepositoryTestSuite) testUser() *models.User {
	birth := time.Date(1990, 4, 15, 0, 0, 0, 0, time.UTC)
	return &models.User{
		TelegramID:            100,
		Username:              "testuser",
		Name:                  "Test User",
		BirthDate:             &birth,
		RegisteredFromGroupID: -100500,
		CreatedAt:             s.testNow,
	}
}

func (s *SQLiteRepositoryTestSuite) TestCreateAndGet() {
	out, err := s.repo.CreateOrGet(context.Background(), &CreateOrGetInput{User: s.testUser()})
	s.Require().NoError(err)
	s.False(out.AlreadyExisted)

	got, err := s.repo.GetByTelegramID(context.Background(), &GetByTelegramIDInput{TelegramID: 100})
	s.Require().NoError(err)
	s.Equal("Test User", got.Name)
	s.Equal("testuser", got.Username)
	s.Equal(int64(-100500), got.RegisteredFromGroupID)
	s.Require().NotNil(got.BirthDate)
	s.Equal(1990, got.BirthDate.Year())
	s.Equal(time.April, got.BirthDate.Month())
}

func (s *SQLiteRepositoryTestSuite) TestCreateWithoutBirthDate() {
	u := s.testUser()
	u.BirthDate = nil

	_, err := s.repo.CreateOrGet(context.Background(), &CreateOrGetInput{User: u})
	s.Require().NoError(err)

	got, err := s.repo.GetByTelegramID(context.Background(), &GetByTelegramIDInput{TelegramID: 100})
	s.Require().NoError(err)
	s.Nil(got.BirthDate)
}

func (s *SQLiteRepositoryTestSuite) TestDuplicateCreateIsIdempotent() {
	first, err := s.repo.CreateOrGet(context.Background(), &CreateOrGetInput{User: s.testUser()})
	s.Require().NoError(err)
	s.False(first.AlreadyExisted)

	// Second create for the same Telegram ID must return the stored row,
	// not the new payload, and must not error.
	dup := s.testUser()
	dup.Name = "Different Name"

	second, err := s.repo.CreateOrGet(context.Background(), &CreateOrGetInput{User: dup})
	s.Require().NoError(err)
	s.True(second.AlreadyExisted)
	s.Equal("Test User", second.User.Name)
}

func (s *SQLiteRepositoryTestSuite) TestListByGroupID() {
	for i, group := range []int64{-1, -1, -2} {
		u := s.testUser()
		u.TelegramID = int64(100 + i)
		u.RegisteredFromGroupID = group
		_, err := s.repo.CreateOrGet(context.Background(), &CreateOrGetInput{User: u})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListByGroupID(context.Background(), &ListByGroupIDInput{GroupID: -1})
	s.Require().NoError(err)
	s.Len(out.Users, 2)

	out, err = s.repo.ListByGroupID(context.Background(), &ListByGroupIDInput{GroupID: -3})
	s.Require().NoError(err)
	s.Empty(out.Users)
}

func (s *SQLiteRepositoryTestSuite) TestGetNonExistentUser() {
	_, err := s.repo.GetByTelegramID(context.Background(), &GetByTelegramIDInput{TelegramID: 999})
	s.Require().ErrorIs(err, ErrUserNotFound)
}
