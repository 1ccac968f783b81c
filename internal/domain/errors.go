package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	// ErrConfiguration marks a generation request that can never succeed with
	// the given word lists or settings. It is terminal and never retried.
	ErrConfiguration = errors.New("configuration error")
	// ErrPoolSize is returned when a bounded retry loop runs out of budget
	// because there are not enough distinct words to satisfy the request.
	ErrPoolSize = fmt.Errorf("%w: pool size not satisfiable", ErrConfiguration)
	// ErrAlreadyGrammatical is returned when a paragraph that is no longer RAW
	// is handed to the grammaticalizer.
	ErrAlreadyGrammatical = errors.New("paragraph is not raw")
	ErrValidation         = errors.New("validation error")
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
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
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

// ConfigurationError wraps a reason with ErrConfiguration.
func ConfigurationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
