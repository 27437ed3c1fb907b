// Package errors defines the application error taxonomy and its mapping to
// HTTP responses.
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

// Predefined error types. The messages mirror the public API contract, where
// every failure body carries a short human-readable msg.
var (
	// Validation errors
	ErrMissingFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"Please enter all fields",
		"",
	)

	ErrMissingQuery = NewBaseError(
		http.StatusBadRequest,
		"MISSING_QUERY",
		"Please provide a search query",
		"",
	)

	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"Latitude and longitude must be numbers",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Status must be 'In Stock' or 'Out of Stock'",
		"",
	)

	// Conflict errors. Duplicate email answers 400 rather than 409 to keep
	// the original wire contract.
	ErrEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_TAKEN",
		"User already exists",
		"",
	)

	ErrPharmacyAlreadyLinked = NewBaseError(
		http.StatusBadRequest,
		"PHARMACY_ALREADY_LINKED",
		"A pharmacy is already registered for this account",
		"",
	)

	// Authentication errors
	ErrUserDoesNotExist = NewBaseError(
		http.StatusBadRequest,
		"USER_DOES_NOT_EXIST",
		"User does not exist",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrNoToken = NewBaseError(
		http.StatusUnauthorized,
		"NO_TOKEN",
		"No token, authorization denied",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TOKEN",
		"Token is not valid",
		"",
	)

	// Not-found errors
	ErrNoPharmacyLinked = NewBaseError(
		http.StatusNotFound,
		"NO_PHARMACY_LINKED",
		"No pharmacy found for this user",
		"",
	)

	ErrStockItemNotFound = NewBaseError(
		http.StatusNotFound,
		"STOCK_ITEM_NOT_FOUND",
		"Stock item not found",
		"",
	)

	ErrStockRecordNotFound = NewBaseError(
		http.StatusNotFound,
		"STOCK_RECORD_NOT_FOUND",
		"Stock record not found for this pharmacy and medicine",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Server Error",
		"",
	)
)

// DatabaseExecuteError represents a persistence failure, implementing the
// AppError interface. It surfaces to clients as a generic 500.
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
	return "Server Error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
