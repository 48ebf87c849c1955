package errors

import (
	"net/http"
	"strings"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full list of field failures for a payload.
type ValidationError struct {
	fields []FieldError
}

// NewValidationError creates a ValidationError from field failures.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{fields: fields}
}

// Fields returns the field-level failures.
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Input validation failed"
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return e.Error()
}
