package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in StudioError with the failing operation
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrSessionNotFound indicates that no session exists for the given ID.
	// API layer should map this to HTTP 404 Not Found.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNoCarouselContent indicates that images were requested without a
	// successful carousel generation to derive them from.
	// API layer should map this to HTTP 409 Conflict.
	ErrNoCarouselContent = errors.New("no carousel content to illustrate")

	// ErrInvalidTransition indicates a session state change that the
	// lifecycle does not allow.
	ErrInvalidTransition = errors.New("invalid session state transition")
)

// StudioError wraps errors from the studio with the operation that failed.
type StudioError struct {
	// Operation is the operation that failed (e.g., "generate_content", "generate_images")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for StudioError.
func (e *StudioError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("studio %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("studio %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StudioError) Unwrap() error {
	return e.Err
}

// NewStudioError creates a new StudioError.
func NewStudioError(operation, message string, err error) *StudioError {
	return &StudioError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
