package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/dvigun/beerbot/internal/models"
)

const createUsersTable = `CREATE TABLE IF NOT EXISTS users (
	telegram_id INTEGER PRIMARY KEY,
	username TEXT NOT NULL DEFAULT '',
	name TEXT NOT NULL,
	birth_date TEXT,
	registered_from_group_id INTEGER NOT NULL,
	created_at TEXT NOT NULL
);`

// ErrUserNotFound is returned when a user is not found
var ErrUserNotFound = errors.New("user not found")

// Config holds configuration for the SQLite user repository
type Config struct {
	// DB is an open database handle
	DB *sql.DB
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed user repository
func NewSQLite(cfg *Config) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database handle cannot be nil")
	}

	if _, err := cfg.DB.Exec(createUsersTable); err != nil {
		return nil, fmt.Errorf("failed to create users table: %w", err)
	}

	return &sqliteRepository{
		db: cfg.DB,
	}, nil
}

// CreateOrGet persists a user. A uniqueness conflict on the Telegram ID is
// treated as idempotent success: the existing record is fetched and returned.
func (r *sqliteRepository) CreateOrGet(ctx context.Context, input *CreateOrGetInput) (*CreateOrGetOutput, error) {
	if input == nil || input.User == nil {
		return nil, errors.New("input and user cannot be nil")
	}

	u := input.User
	if u.TelegramID == 0 {
		return nil, errors.New("user telegram ID cannot be zero")
	}

	var birthDate sql.NullString
	if u.BirthDate != nil {
		birthDate = sql.NullString{String: u.BirthDate.Format("2006-01-02"), Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (telegram_id, username, name, birth_date, registered_from_group_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.TelegramID, u.Username, u.Name, birthDate, u.RegisteredFromGroupID,
		u.CreatedAt.Format(time.RFC3339))
	if err != nil {
		if isUniqueViolation(err) {
			existing, getErr := r.GetByTelegramID(ctx, &GetByTelegramIDInput{TelegramID: u.TelegramID})
			if getErr != nil {
				return nil, fmt.Errorf("failed to fetch user after conflict: %w", getErr)
			}
			return &CreateOrGetOutput{User: existing, AlreadyExisted: true}, nil
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &CreateOrGetOutput{User: u}, nil
}

// GetByTelegramID retrieves a user by Telegram ID from SQLite
func (r *sqliteRepository) GetByTelegramID(ctx context.Context, input *GetByTelegramIDInput) (*models.User, error) {
	if input == nil || input.TelegramID == 0 {
		return nil, errors.New("input and telegram ID cannot be empty")
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT telegram_id, username, name, birth_date, registered_from_group_id, created_at
		 FROM users WHERE telegram_id = ?`, input.TelegramID)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// ListByGroupID retrieves all users sponsored by a group chat
func (r *sqliteRepository) ListByGroupID(ctx context.Context, input *ListByGroupIDInput) (*ListByGroupIDOutput, error) {
	if input == nil || input.GroupID == 0 {
		return nil, errors.New("input and group ID cannot be empty")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT telegram_id, username, name, birth_date, registered_from_group_id, created_at
		 FROM users WHERE registered_from_group_id = ? ORDER BY created_at`, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return &ListByGroupIDOutput{Users: users}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	var birthDate sql.NullString
	var createdAt string

	if err := row.Scan(&u.TelegramID, &u.Username, &u.Name, &birthDate,
		&u.RegisteredFromGroupID, &createdAt); err != nil {
		return nil, err
	}

	if birthDate.Valid {
		bd, err := time.Parse("2006-01-02", birthDate.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse birth date: %w", err)
		}
		u.BirthDate = &bd
	}

	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	u.CreatedAt = created

	return &u, nil
}

func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.Code == sqlite3.ErrConstraint
	}
	return false
}
