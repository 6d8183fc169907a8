package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrInvalidState marks an operation attempted against an entity whose
	// current state cannot satisfy it (no skills on file, posting without
	// requirements, responding to a non-invite notification).
	ErrInvalidState = errors.New("invalid state")

	// ErrPreconditionFailed marks a missing prerequisite the caller can fix,
	// e.g. applying without a fresh match score on record.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrDeadlinePassed marks an apply or withdraw attempted after the
	// posting deadline.
	ErrDeadlinePassed = errors.New("deadline passed")

	// ErrUnavailable marks a failed or timed-out call to the scoring backend.
	ErrUnavailable = errors.New("service unavailable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
