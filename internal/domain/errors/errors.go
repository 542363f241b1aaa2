// Package errors defines application errors that carry an HTTP status and a
// business error code alongside the user-facing message.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
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

// Predefined error types
var (
	// Newsletter generation and retrieval errors
	ErrInvalidFrequency = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FREQUENCY",
		"Invalid frequency. Must be 'daily' or 'weekly'.",
		"",
	)

	ErrInvalidStoreIDs = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STORE_IDS",
		"storeIds must be an array of strings.",
		"",
	)

	ErrNewsletterIDRequired = NewBaseError(
		http.StatusBadRequest,
		"NEWSLETTER_ID_REQUIRED",
		"Newsletter ID is required.",
		"",
	)

	ErrNewsletterNotFound = NewBaseError(
		http.StatusNotFound,
		"NEWSLETTER_NOT_FOUND",
		"Newsletter not found.",
		"",
	)

	ErrInvalidExportFormat = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FORMAT",
		"Invalid format. Must be 'json', 'text' or 'html'.",
		"",
	)

	// Store and deal reference errors
	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_FOUND",
		"Store not found.",
		"",
	)

	ErrDealNotFound = NewBaseError(
		http.StatusNotFound,
		"DEAL_NOT_FOUND",
		"Deal not found.",
		"",
	)

	ErrInvalidDeal = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DEAL",
		"Deal validation failed.",
		"",
	)

	// Subscriber errors
	ErrSubscriberExists = NewBaseError(
		http.StatusConflict,
		"SUBSCRIBER_EXISTS",
		"This email address is already subscribed.",
		"",
	)

	ErrSubscriberNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIBER_NOT_FOUND",
		"Subscriber not found.",
		"",
	)

	ErrInvalidRegion = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REGION",
		"Unknown region.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
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
	return "Database execution failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
