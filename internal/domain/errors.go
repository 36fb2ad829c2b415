package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgNotFound         = "resource not found"
	ErrMsgSlugTaken        = "slug already exists"
	ErrMsgInvalidInput     = "invalid input"
	ErrMsgStoreUnavailable = "store unavailable"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrNotFound is returned when an identifier or slug does not resolve.
	ErrNotFound = errors.New(ErrMsgNotFound)

	// ErrSlugTaken is returned when a create collides with an existing slug.
	// Slug uniqueness is enforced by the store, so exactly one of two racing
	// writers receives this error.
	ErrSlugTaken = errors.New(ErrMsgSlugTaken)

	// ErrInvalidInput is returned for bad or missing required input.
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrStoreUnavailable is returned when the database cannot be reached.
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)
)
