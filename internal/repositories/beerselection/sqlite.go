package beerselection

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/dvigun/beerbot/internal/models"
)

const createBeerSelectionsTable = `CREATE TABLE IF NOT EXISTS beer_selections (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	event_id INTEGER NOT NULL,
	chat_id INTEGER NOT NULL,
	beer_choice TEXT NOT NULL,
	created_at TEXT NOT NULL,
	UNIQUE (user_id, event_id)
);`

// ErrSelectionNotFound is returned when a selection is not found
var ErrSelectionNotFound = errors.New("beer selection not found")

// Config holds configuration for the SQLite beer selection repository
type Config struct {
	// DB is an open database handle
	DB *sql.DB
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed beer selection repository
func NewSQLite(cfg *Config) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database handle cannot be nil")
	}

	if _, err := cfg.DB.Exec(createBeerSelectionsTable); err != nil {
		return nil, fmt.Errorf("failed to create beer_selections table: %w", err)
	}

	return &sqliteRepository{
		db: cfg.DB,
	}, nil
}

// CreateOrGet persists a selection. The UNIQUE (user_id, event_id) constraint
// is the concurrency control: losing a race returns the winner's row.
func (r *sqliteRepository) CreateOrGet(ctx context.Context, input *CreateOrGetInput) (*CreateOrGetOutput, error) {
	if input == nil || input.Selection == nil {
		return nil, errors.New("input and selection cannot be nil")
	}

	sel := input.Selection
	if sel.UserID == 0 || sel.EventID == 0 {
		return nil, errors.New("selection user ID and event ID cannot be zero")
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO beer_selections (user_id, event_id, chat_id, beer_choice, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		sel.UserID, sel.EventID, sel.ChatID, sel.BeerChoice,
		sel.CreatedAt.Format(time.RFC3339))
	if err != nil {
		var serr sqlite3.Error
		if errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint {
			existing, getErr := r.GetByUserAndEvent(ctx, &GetByUserAndEventInput{
				UserID:  sel.UserID,
				EventID: sel.EventID,
			})
			if getErr != nil {
				return nil, fmt.Errorf("failed to fetch selection after conflict: %w", getErr)
			}
			return &CreateOrGetOutput{Selection: existing, AlreadyExisted: true}, nil
		}
		return nil, fmt.Errorf("failed to create beer selection: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read selection ID: %w", err)
	}

	created := *sel
	created.ID = id
	return &CreateOrGetOutput{Selection: &created}, nil
}

// GetByUserAndEvent retrieves a user's selection for an event
func (r *sqliteRepository) GetByUserAndEvent(ctx context.Context, input *GetByUserAndEventInput) (*models.BeerSelection, error) {
	if input == nil || input.UserID == 0 || input.EventID == 0 {
		return nil, errors.New("input, user ID and event ID cannot be empty")
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, event_id, chat_id, beer_choice, created_at
		 FROM beer_selections WHERE user_id = ? AND event_id = ?`,
		input.UserID, input.EventID)

	var sel models.BeerSelection
	var createdAt string
	if err := row.Scan(&sel.ID, &sel.UserID, &sel.EventID, &sel.ChatID,
		&sel.BeerChoice, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSelectionNotFound
		}
		return nil, fmt.Errorf("failed to get beer selection: %w", err)
	}

	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	sel.CreatedAt = created

	return &sel, nil
}

// CountByChoice aggregates an event's selections by label, optionally bounded
// by the selection timestamp window, and counts distinct participating users.
func (r *sqliteRepository) CountByChoice(ctx context.Context, input *CountByChoiceInput) (*CountByChoiceOutput, error) {
	if input == nil || input.EventID == 0 {
		return nil, errors.New("input and event ID cannot be empty")
	}

	query := `SELECT beer_choice, COUNT(*) FROM beer_selections WHERE event_id = ?`
	args := []any{input.EventID}
	if !input.From.IsZero() {
		query += ` AND created_at >= ?`
		args = append(args, input.From.Format(time.RFC3339))
	}
	if !input.To.IsZero() {
		query += ` AND created_at <= ?`
		args = append(args, input.To.Format(time.RFC3339))
	}
	query += ` GROUP BY beer_choice`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count beer selections: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var choice string
		var count int
		if err := rows.Scan(&choice, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count row: %w", err)
		}
		counts[choice] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate count rows: %w", err)
	}

	distinctQuery := `SELECT COUNT(DISTINCT user_id) FROM beer_selections WHERE event_id = ?`
	distinctArgs := []any{input.EventID}
	if !input.From.IsZero() {
		distinctQuery += ` AND created_at >= ?`
		distinctArgs = append(distinctArgs, input.From.Format(time.RFC3339))
	}
	if !input.To.IsZero() {
		distinctQuery += ` AND created_at <= ?`
		distinctArgs = append(distinctArgs, input.To.Format(time.RFC3339))
	}

	var participants int
	if err := r.db.QueryRowContext(ctx, distinctQuery, distinctArgs...).Scan(&participants); err != nil {
		return nil, fmt.Errorf("failed to count participants: %w", err)
	}

	return &CountByChoiceOutput{Counts: counts, Participants: participants}, nil
}
