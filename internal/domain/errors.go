package domain

import "errors"

var (
	// ErrNotFound is returned when no entry exists with the requested id.
	ErrNotFound = errors.New("entry not found")

	// ErrNoChange is the outcome of an edit whose trimmed content matches
	// what is already stored. It is reported to the user but is not a
	// failure: nothing was lost and nothing needs rolling back.
	ErrNoChange = errors.New("no changes made")

	// ErrInvalidInput marks malformed user input (bad date, bad id spec).
	// Callers wrap it with the offending token.
	ErrInvalidInput = errors.New("invalid input")
)
