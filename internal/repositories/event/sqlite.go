package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dvigun/beerbot/internal/models"
)

const createEventsTable = `CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	event_date TEXT NOT NULL,
	event_time TEXT NOT NULL,
	latitude REAL,
	longitude REAL,
	location_name TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	image_file_id TEXT NOT NULL DEFAULT '',
	has_beer_choice INTEGER NOT NULL DEFAULT 0,
	beer_option_1 TEXT NOT NULL DEFAULT '',
	beer_option_2 TEXT NOT NULL DEFAULT '',
	created_by INTEGER NOT NULL,
	chat_id INTEGER NOT NULL,
	user_notify_job_id TEXT NOT NULL DEFAULT '',
	bartender_job_id TEXT NOT NULL DEFAULT '',
	bartender_sent INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);`

// ErrEventNotFound is returned when an event is not found
var ErrEventNotFound = errors.New("event not found")

// Config holds configuration for the SQLite event repository
type Config struct {
	// DB is an open database handle
	DB *sql.DB
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed event repository
func NewSQLite(cfg *Config) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database handle cannot be nil")
	}

	if _, err := cfg.DB.Exec(createEventsTable); err != nil {
		return nil, fmt.Errorf("failed to create events table: %w", err)
	}

	return &sqliteRepository{
		db: cfg.DB,
	}, nil
}

// Create persists a new event and returns it with its assigned ID
func (r *sqliteRepository) Create(ctx context.Context, input *CreateInput) (*models.Event, error) {
	if input == nil || input.Event == nil {
		return nil, errors.New("input and event cannot be nil")
	}

	e := input.Event
	if e.Name == "" {
		return nil, errors.New("event name cannot be empty")
	}

	var lat, lon sql.NullFloat64
	if e.Latitude != nil {
		lat = sql.NullFloat64{Float64: *e.Latitude, Valid: true}
	}
	if e.Longitude != nil {
		lon = sql.NullFloat64{Float64: *e.Longitude, Valid: true}
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO events (name, event_date, event_time, latitude, longitude,
			location_name, description, image_file_id, has_beer_choice,
			beer_option_1, beer_option_2, created_by, chat_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Name, e.EventDate.Format("2006-01-02"), e.EventTime, lat, lon,
		e.LocationName, e.Description, e.ImageFileID, boolToInt(e.HasBeerChoice),
		e.BeerOption1, e.BeerOption2, e.CreatedBy, e.ChatID,
		e.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read event ID: %w", err)
	}

	created := *e
	created.ID = id
	return &created, nil
}

// Get retrieves an event by ID from SQLite
func (r *sqliteRepository) Get(ctx context.Context, input *GetInput) (*models.Event, error) {
	if input == nil || input.EventID == 0 {
		return nil, errors.New("input and event ID cannot be empty")
	}

	row := r.db.QueryRowContext(ctx, selectEventColumns+` WHERE id = ?`, input.EventID)

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return e, nil
}

// ListUpcoming retrieves events dated on or after the given day, ordered by
// date and time ascending. Same-day events whose start already passed are
// included; callers filter against the current instant.
func (r *sqliteRepository) ListUpcoming(ctx context.Context, input *ListUpcomingInput) (*ListUpcomingOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.QueryContext(ctx,
		selectEventColumns+` WHERE event_date >= ? ORDER BY event_date ASC, event_time ASC LIMIT ?`,
		input.From.Format("2006-01-02"), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return &ListUpcomingOutput{Events: events}, nil
}

// SetJobIDs attaches scheduler job handles to an event
func (r *sqliteRepository) SetJobIDs(ctx context.Context, input *SetJobIDsInput) error {
	if input == nil || input.EventID == 0 {
		return errors.New("input and event ID cannot be empty")
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET user_notify_job_id = ?, bartender_job_id = ? WHERE id = ?`,
		input.UserNotifyJobID, input.BartenderJobID, input.EventID)
	if err != nil {
		return fmt.Errorf("failed to set job IDs: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// MarkBartenderSent flips bartender_sent from 0 to 1 in a single statement.
// A redelivered summary job observes AlreadySent and skips the send.
func (r *sqliteRepository) MarkBartenderSent(ctx context.Context, input *MarkBartenderSentInput) (*MarkBartenderSentOutput, error) {
	if input == nil || input.EventID == 0 {
		return nil, errors.New("input and event ID cannot be empty")
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET bartender_sent = 1 WHERE id = ? AND bartender_sent = 0`, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark bartender sent: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return &MarkBartenderSentOutput{AlreadySent: affected == 0}, nil
}

const selectEventColumns = `SELECT id, name, event_date, event_time, latitude, longitude,
	location_name, description, image_file_id, has_beer_choice,
	beer_option_1, beer_option_2, created_by, chat_id,
	user_notify_job_id, bartender_job_id, bartender_sent, created_at
	FROM events`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var e models.Event
	var eventDate, createdAt string
	var lat, lon sql.NullFloat64
	var hasBeerChoice, bartenderSent int

	if err := row.Scan(&e.ID, &e.Name, &eventDate, &e.EventTime, &lat, &lon,
		&e.LocationName, &e.Description, &e.ImageFileID, &hasBeerChoice,
		&e.BeerOption1, &e.BeerOption2, &e.CreatedBy, &e.ChatID,
		&e.UserNotifyJobID, &e.BartenderJobID, &bartenderSent, &createdAt); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", eventDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse event date: %w", err)
	}
	e.EventDate = date

	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	e.CreatedAt = created

	if lat.Valid {
		v := lat.Float64
		e.Latitude = &v
	}
	if lon.Valid {
		v := lon.Float64
		e.Longitude = &v
	}
	e.HasBeerChoice = hasBeerChoice != 0
	e.BartenderSent = bartenderSent != 0

	return &e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
