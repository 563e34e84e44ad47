package models

import "errors"

// Sentinel errors shared by services and handlers. Services wrap these with
// context via fmt.Errorf("...: %w", err); handlers match with errors.Is and
// turn them into a flash message plus a redirect to a safe view.
var (
	// ErrValidation indicates a missing or malformed required field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound indicates a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness violation, e.g. a duplicate username.
	ErrConflict = errors.New("already exists")
)
