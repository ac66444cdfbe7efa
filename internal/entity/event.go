package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event is a persisted directory entry. Date is stored as absolute
// milliseconds at local midnight, Time as milliseconds since midnight.
type Event struct {
	ID        int64   `json:"id" db:"id"`
	EventName string  `json:"event_name" db:"event_name"`
	CityName  string  `json:"city_name" db:"city_name"`
	Date      int64   `json:"date" db:"date"`
	Time      int64   `json:"time" db:"time"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// EventRow is an event as returned from a range query: the stored date
// re-rendered to YYYY-MM-DD text, coordinates still attached for the
// enrichment stage.
type EventRow struct {
	EventName string  `json:"event_name"`
	CityName  string  `json:"city_name"`
	Date      string  `json:"date"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EventPage is one page of a date-range query plus the unpaginated total.
type EventPage struct {
	Events      []EventRow
	TotalEvents int
}

// EnrichedEvent is the response-only view of an event: coordinates are
// replaced by the provider lookups keyed on them.
type EnrichedEvent struct {
	EventName  string          `json:"event_name"`
	CityName   string          `json:"city_name"`
	Date       string          `json:"date"`
	Weather    json.RawMessage `json:"weather"`
	DistanceKm float64         `json:"distance_km"`
}

// SearchResult is the envelope returned by an enriched search.
type SearchResult struct {
	Page        int             `json:"page"`
	PageSize    int             `json:"pageSize"`
	TotalEvents int             `json:"totalEvents"`
	TotalPages  int             `json:"totalPages"`
	Events      []EnrichedEvent `json:"events"`
}

// DateToMillis returns the absolute timestamp of local midnight on the
// given calendar date, in milliseconds.
func DateToMillis(year, month, day int) int64 {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local).UnixMilli()
}

// MillisToDateString renders a stored midnight timestamp back to the
// YYYY-MM-DD form events were created with.
func MillisToDateString(ms int64) string {
	t := time.UnixMilli(ms).In(time.Local)
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// TimeToMillis converts a wall-clock time to milliseconds since midnight.
func TimeToMillis(hour, minute, second int) int64 {
	return int64(hour)*60*60*1000 + int64(minute)*60*1000 + int64(second)*1000
}
