package entity

import "fmt"

// ValidationError reports bad or missing input. MissingFields is set only
// when required fields were absent, in their declared order.
type ValidationError struct {
	Message       string
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a plain invalid-input error.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// RangeError reports an out-of-bounds page. It carries the pagination
// metadata computed before the bounds check so the response can include it.
type RangeError struct {
	Page        int
	PageSize    int
	TotalEvents int
	TotalPages  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("page %d is out of range, total pages: %d", e.Page, e.TotalPages)
}

// StorageError wraps a persistence failure. The cause is logged at the
// boundary, never returned to the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// EnrichmentError aggregates provider failures from one fan-out. A single
// failed call fails the whole enrichment, no partial results.
type EnrichmentError struct {
	Err error
}

func (e *EnrichmentError) Error() string {
	return fmt.Sprintf("enrichment: %v", e.Err)
}

func (e *EnrichmentError) Unwrap() error {
	return e.Err
}
