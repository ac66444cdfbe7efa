package repository

import (
	"context"

	"github.com/akashsahu123/event-management/internal/entity"
	"github.com/akashsahu123/event-management/internal/validator"
)

type EventRepository interface {
	// EnsureSchema creates the events table and date index if absent and,
	// on the very first run, seeds the table from the bulk data file.
	// The trigger is table existence only; a changed seed file never
	// re-seeds an existing deployment.
	EnsureSchema(ctx context.Context) error

	// Insert writes one already-validated event and fills in its ID.
	Insert(ctx context.Context, event *entity.Event) error

	// FindByDateRange returns the page-th page of events whose date falls
	// in [anchor, anchor+(nextDays+1)d), ordered by (date, time), plus
	// the total match count ignoring pagination.
	FindByDateRange(ctx context.Context, anchor validator.CalendarDate, nextDays, page, pageSize int) (*entity.EventPage, error)

	// GetAll dumps every event ordered by (date, time). Operational
	// tooling only, not part of the search path.
	GetAll(ctx context.Context) ([]*entity.Event, error)
}
