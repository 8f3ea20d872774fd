package groupadmin

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

func (s *SQLiteRepositoryTestSuite) TestCreateAndGet() {
	out, err := s.repo.CreateOrGet(context.Background(), &CreateOrGetInput{
		Admin: &models.GroupAdmin{ChatID: -100, UserID: 7, CreatedAt: s.testNow},
	})
	s.Require().NoError(err)
	s.False(out.AlreadyExisted)

	got, err := s.repo.GetByChatID(context.Background(), &GetByChatIDInput{ChatID: -100})
	s.Require().NoError(err)
	s.Equal(int64(7), got.UserID)
}

func (s *SQLiteRepositoryTestSuite) TestDuplicatePromotionIsIdempotent() {
	first, err := s.repo.CreateOrGet(context.Background(), &CreateOrGetInput{
		Admin: &models.GroupAdmin{ChatID: -100, UserID: 7, CreatedAt: s.testNow},
	})
	s.Require().NoError(err)
	s.False(first.AlreadyExisted)

	// Redelivered promotion with a different promoting user must return
	// the first row's data.
	second, err := s.repo.CreateOrGet(context.Background(), &CreateOrGetInput{
		Admin: &models.GroupAdmin{ChatID: -100, UserID: 8, CreatedAt: s.testNow.Add(time.Minute)},
	})
	s.Require().NoError(err)
	s.True(second.AlreadyExisted)
	s.Equal(int64(7), second.Admin.UserID)

	out, err := s.repo.GetByUserID(context.Background(), &GetByUserIDInput{UserID: 7})
	s.Require().NoError(err)
	s.Len(out.Admins, 1)
}

func (s *SQLiteRepositoryTestSuite) TestGetByUserID() {
	for _, chat := range []int64{-1, -2} {
		_, err := s.repo.CreateOrGet(context.Background(), &CreateOrGetInput{
			Admin: &models.GroupAdmin{ChatID: chat, UserID: 7, CreatedAt: s.testNow},
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.GetByUserID(context.Background(), &GetByUserIDInput{UserID: 7})
	s.Require().NoError(err)
	s.Len(out.Admins, 2)

	out, err = s.repo.GetByUserID(context.Background(), &GetByUserIDInput{UserID: 8})
	s.Require().NoError(err)
	s.Empty(out.Admins)
}

func (s *SQLiteRepositoryTestSuite) TestDelete() {
	_, err := s.repo.CreateOrGet(context.Background(), &CreateOrGetInput{
		Admin: &models.GroupAdmin{ChatID: -100, UserID: 7, CreatedAt: s.testNow},
	})
	s.Require().NoError(err)

	out, err := s.repo.Delete(context.Background(), &DeleteInput{ChatID: -100})
	s.Require().NoError(err)
	s.True(out.Deleted)

	// Deleting again reports that nothing was removed.
	out, err = s.repo.Delete(context.Background(), &DeleteInput{ChatID: -100})
	s.Require().NoError(err)
	s.False(out.Deleted)

	_, err = s.repo.GetByChatID(context.Background(), &GetByChatIDInput{ChatID: -100})
	s.Require().ErrorIs(err, ErrAdminNotFound)
}
