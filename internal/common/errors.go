// Package common defines sentinel errors shared by the service and transport
// layers. Callers should match them with errors.Is.
package common

import "errors"

var (
	// Caller-correctable input problems (missing or blank required fields).
	ErrValidation = errors.New("validation error")

	// Uniqueness violations, e.g. an email that is already registered.
	ErrConflict = errors.New("conflict")

	// Failed credential checks and missing, malformed or expired tokens.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")

	// Missing resources, including resources owned by someone else.
	ErrNotFound = errors.New("not found")

	ErrInternal = errors.New("internal error")

	// Returned when no object storage is configured for exports.
	ErrArchiveDisabled = errors.New("archive storage is not configured")
)
