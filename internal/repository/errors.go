package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDateConflict is returned when a reservation insert loses the
	// conflict re-check inside its transaction
	ErrDateConflict = errors.New("reservation dates conflict with an existing reservation")
)
