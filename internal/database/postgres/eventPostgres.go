package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akashsahu123/event-management/internal/entity"
	"github.com/akashsahu123/event-management/internal/validator"
)

const dayMillis = 24 * 60 * 60 * 1000

type eventRepository struct {
	db     *sql.DB
	seeder Seeder
}

// Seeder loads the bootstrap dataset into a freshly created table.
type Seeder interface {
	Seed(ctx context.Context, repo EventRepository) error
}

func NewEventRepository(db *sql.DB, seeder Seeder) EventRepository {
	return &eventRepository{db: db, seeder: seeder}
}

func (r *eventRepository) EnsureSchema(ctx context.Context) error {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = 'events'
		)
	`
	if err := r.db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		return &entity.StorageError{Op: "check events table existence", Err: err}
	}

	if exists {
		return nil
	}

	migrations := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
			event_name VARCHAR(100) NOT NULL,
			city_name VARCHAR(100) NOT NULL,
			date BIGINT NOT NULL,
			time BIGINT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_date ON events(date)`,
	}

	for _, migration := range migrations {
		if _, err := r.db.ExecContext(ctx, migration); err != nil {
			return &entity.StorageError{Op: "create events table", Err: err}
		}
	}

	if r.seeder != nil {
		if err := r.seeder.Seed(ctx, r); err != nil {
			return fmt.Errorf("failed to seed events table: %w", err)
		}
	}

	return nil
}

func (r *eventRepository) Insert(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (event_name, city_name, date, time, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		event.EventName,
		event.CityName,
		event.Date,
		event.Time,
		event.Latitude,
		event.Longitude,
	).Scan(&event.ID)

	if err != nil {
		return &entity.StorageError{Op: "insert event", Err: err}
	}

	return nil
}

func (r *eventRepository) FindByDateRange(ctx context.Context, anchor validator.CalendarDate, nextDays, page, pageSize int) (*entity.EventPage, error) {
	startDate := entity.DateToMillis(anchor.Year, anchor.Month, anchor.Day)
	endDate := startDate + int64(nextDays+1)*dayMillis

	query := `
		SELECT event_name, city_name, date, latitude, longitude
		FROM events
		WHERE date >= $1 AND date < $2
		ORDER BY date, time
		LIMIT $3 OFFSET $4
	`

	// Negative pages reach the store before the orchestrator's bounds
	// check; clamp the offset so the query itself cannot fail on them.
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.QueryContext(ctx, query, startDate, endDate, pageSize, offset)
	if err != nil {
		return nil, &entity.StorageError{Op: "query events by date range", Err: err}
	}
	defer rows.Close()

	events := []entity.EventRow{}
	for rows.Next() {
		var row entity.EventRow
		var dateMillis int64
		err := rows.Scan(
			&row.EventName,
			&row.CityName,
			&dateMillis,
			&row.Latitude,
			&row.Longitude,
		)
		if err != nil {
			return nil, &entity.StorageError{Op: "scan event row", Err: err}
		}
		row.Date = entity.MillisToDateString(dateMillis)
		events = append(events, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &entity.StorageError{Op: "iterate event rows", Err: err}
	}

	// Independent read; a count drift between the two queries under
	// concurrent writers is accepted.
	var total int
	countQuery := `SELECT count(*) FROM events WHERE date >= $1 AND date < $2`
	if err := r.db.QueryRowContext(ctx, countQuery, startDate, endDate).Scan(&total); err != nil {
		return nil, &entity.StorageError{Op: "count events by date range", Err: err}
	}

	return &entity.EventPage{Events: events, TotalEvents: total}, nil
}

func (r *eventRepository) GetAll(ctx context.Context) ([]*entity.Event, error) {
	query := `
		SELECT id, event_name, city_name, date, time, latitude, longitude
		FROM events
		ORDER BY date, time
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &entity.StorageError{Op: "query all events", Err: err}
	}
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		var event entity.Event
		err := rows.Scan(
			&event.ID,
			&event.EventName,
			&event.CityName,
			&event.Date,
			&event.Time,
			&event.Latitude,
			&event.Longitude,
		)
		if err != nil {
			return nil, &entity.StorageError{Op: "scan event", Err: err}
		}
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, &entity.StorageError{Op: "iterate events", Err: err}
	}

	return events, nil
}
