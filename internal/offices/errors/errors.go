package errors

import "errors"

var (
	// ErrNotFound is returned by ChangeStatus when the office does not exist.
	// Every other lookup reports a missing office as a nil result instead.
	ErrNotFound = errors.New("office not found")

	ErrInvalidID = errors.New("invalid office ID format")

	// ErrStorage wraps any failure reported by the document store.
	ErrStorage = errors.New("office storage failure")

	// ErrConflict is returned when a replace loses against a concurrent writer.
	ErrConflict = errors.New("office was modified concurrently")
)
