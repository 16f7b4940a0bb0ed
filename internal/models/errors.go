package models

import "errors"

// Failure kinds shared by every layer. Lower layers wrap these with %w;
// only the HTTP layer maps them to status codes.
var (
	// ErrUnauthorized indicates a missing or unrecognised identity header.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a payload that violates a persisted-field constraint.
	ErrValidation = errors.New("validation failure")

	// ErrStore indicates the underlying persistence failed.
	ErrStore = errors.New("store failure")
)
