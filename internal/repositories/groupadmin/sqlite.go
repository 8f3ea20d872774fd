package groupadmin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/dvigun/beerbot/internal/models"
)

const createGroupAdminsTable = `CREATE TABLE IF NOT EXISTS group_admins (
	chat_id INTEGER PRIMARY KEY,
	user_id INTEGER NOT NULL,
	created_at TEXT NOT NULL
);`

// ErrAdminNotFound is returned when a chat has no admin record
var ErrAdminNotFound = errors.New("group admin not found")

// Config holds configuration for the SQLite group admin repository
type Config struct {
	// DB is an open database handle
	DB *sql.DB
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed group admin repository
func NewSQLite(cfg *Config) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database handle cannot be nil")
	}

	if _, err := cfg.DB.Exec(createGroupAdminsTable); err != nil {
		return nil, fmt.Errorf("failed to create group_admins table: %w", err)
	}

	return &sqliteRepository{
		db: cfg.DB,
	}, nil
}

// CreateOrGet persists an admin record. The chat ID is the primary key, so a
// duplicate promotion delivery returns the first row instead of erroring.
func (r *sqliteRepository) CreateOrGet(ctx context.Context, input *CreateOrGetInput) (*CreateOrGetOutput, error) {
	if input == nil || input.Admin == nil {
		return nil, errors.New("input and admin cannot be nil")
	}

	a := input.Admin
	if a.ChatID == 0 {
		return nil, errors.New("admin chat ID cannot be zero")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO group_admins (chat_id, user_id, created_at) VALUES (?, ?, ?)`,
		a.ChatID, a.UserID, a.CreatedAt.Format(time.RFC3339))
	if err != nil {
		var serr sqlite3.Error
		if errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint {
			existing, getErr := r.GetByChatID(ctx, &GetByChatIDInput{ChatID: a.ChatID})
			if getErr != nil {
				return nil, fmt.Errorf("failed to fetch admin after conflict: %w", getErr)
			}
			return &CreateOrGetOutput{Admin: existing, AlreadyExisted: true}, nil
		}
		return nil, fmt.Errorf("failed to create group admin: %w", err)
	}

	return &CreateOrGetOutput{Admin: a}, nil
}

// GetByChatID retrieves the admin record for a chat
func (r *sqliteRepository) GetByChatID(ctx context.Context, input *GetByChatIDInput) (*models.GroupAdmin, error) {
	if input == nil || input.ChatID == 0 {
		return nil, errors.New("input and chat ID cannot be empty")
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT chat_id, user_id, created_at FROM group_admins WHERE chat_id = ?`, input.ChatID)

	a, err := scanAdmin(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get group admin: %w", err)
	}

	return a, nil
}

// GetByUserID retrieves all admin records created by a user
func (r *sqliteRepository) GetByUserID(ctx context.Context, input *GetByUserIDInput) (*GetByUserIDOutput, error) {
	if input == nil || input.UserID == 0 {
		return nil, errors.New("input and user ID cannot be empty")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT chat_id, user_id, created_at FROM group_admins WHERE user_id = ? ORDER BY created_at`, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group admins: %w", err)
	}
	defer rows.Close()

	admins := []*models.GroupAdmin{}
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group admin: %w", err)
		}
		admins = append(admins, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group admins: %w", err)
	}

	return &GetByUserIDOutput{Admins: admins}, nil
}

// Delete removes the admin record for a chat
func (r *sqliteRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.ChatID == 0 {
		return nil, errors.New("input and chat ID cannot be empty")
	}

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM group_admins WHERE chat_id = ?`, input.ChatID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete group admin: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return &DeleteOutput{Deleted: affected > 0}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAdmin(row rowScanner) (*models.GroupAdmin, error) {
	var a models.GroupAdmin
	var createdAt string

	if err := row.Scan(&a.ChatID, &a.UserID, &createdAt); err != nil {
		return nil, err
	}

	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	a.CreatedAt = created

	return &a, nil
}
