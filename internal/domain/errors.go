// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidStatus is returned when a task status is not one of the
	// enumerated values.
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrEmptyTitle is returned when a task is created or updated with an
	// empty title.
	ErrEmptyTitle = errors.New("title cannot be empty")
)
