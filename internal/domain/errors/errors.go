// Package errors defines the application error taxonomy. Every error that can
// cross the usecase boundary maps to an HTTP status and a stable business code.
package errors

import (
	"net/http"

	"testament/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

var (
	// ErrNotFound covers both a genuinely missing record and a record owned by
	// a different applicant. The two cases are deliberately indistinguishable
	// so that probing cannot reveal whether a given ID exists.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested resource was not found",
		"",
	)

	// ErrRegistrationKeyInvalid is returned when the X-Registration-Key header
	// is missing or does not resolve to an applicant.
	ErrRegistrationKeyInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REGISTRATION_KEY_INVALID",
		"Missing or invalid registration key",
		"",
	)

	// ErrUnauthorized covers missing/invalid admin credentials.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	// ErrForbidden is returned when an authenticated caller fails the
	// same-applicant-or-admin policy.
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"This email address is already registered",
		"",
	)

	ErrPersonalDetailsExist = NewBaseError(
		http.StatusConflict,
		"PERSONAL_DETAILS_EXIST",
		"Personal details have already been submitted for this applicant",
		"",
	)

	ErrDuplicateAllocation = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_ALLOCATION",
		"An allocation for this asset and beneficiary already exists",
		"",
	)

	ErrInvalidOTP = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_OTP",
		"The one-time password is invalid or has expired",
		"",
	)

	ErrSponsorshipKeyInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SPONSORSHIP_KEY_INVALID",
		"The sponsorship key is not valid",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrPaymentFailed = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_FAILED",
		"The payment could not be processed",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
