package service

import (
	"context"

	"github.com/akashsahu123/event-management/internal/entity"
)

// Fixed by the API contract, not configuration.
const (
	PageSize = 10
	NextDays = 14
)

// SearchParams are the raw query parameters of a search request, before
// any validation. Absent parameters are absent map keys.
type SearchParams map[string]string

type EventService interface {
	// CreateEvent validates the raw request body and persists the event.
	// The payload stays a generic map so that the permissive falsy
	// missing-field semantics apply before any typed decoding.
	CreateEvent(ctx context.Context, data map[string]any) (*entity.Event, error)

	// SearchEvents runs the full pipeline: validation, windowed range
	// query, provider fan-out, envelope assembly.
	SearchEvents(ctx context.Context, params SearchParams) (*entity.SearchResult, error)

	// GetAllEvents dumps the whole table for operational tooling.
	GetAllEvents(ctx context.Context) ([]*entity.Event, error)
}
