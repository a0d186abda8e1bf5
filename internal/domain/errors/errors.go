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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// Is matches on the business error code, so a copy carrying details still
// matches the predefined error it was derived from.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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
	// Identity errors
	ErrInvalidIdentity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IDENTITY",
		"Invalid email address",
		"",
	)

	ErrIdentityConflict = NewBaseError(
		http.StatusConflict,
		"IDENTITY_CONFLICT",
		"An account with this email already exists",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"User not found in the database",
		"",
	)

	// Authentication errors
	ErrAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_FAILED",
		"Incorrect email or password",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"No user is logged in",
		"",
	)

	ErrTooManyAttempts = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_ATTEMPTS",
		"Too many attempts, try again later",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Booking errors
	ErrBookingNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOKING_NOT_FOUND",
		"No booking found for this booking number",
		"",
	)

	ErrBookingExpired = NewBaseError(
		http.StatusGone,
		"BOOKING_EXPIRED",
		"This booking is not for today",
		"",
	)

	ErrPodsUnavailable = NewBaseError(
		http.StatusConflict,
		"PODS_UNAVAILABLE",
		"Not enough available pods",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// Validation returns ErrValidationFailed carrying the offending detail.
func Validation(details string) *BaseError {
	return ErrValidationFailed.WithDetails(details)
}

// StoreError is a record store I/O failure. It is retryable and implements
// AppError so it can reach the client unchanged.
type StoreError struct {
	op         string
	collection string
	key        string
	err        error
}

// NewStoreError wraps a backend failure for the given operation.
func NewStoreError(op, collection, key string, err error) *StoreError {
	return &StoreError{
		op:         op,
		collection: collection,
		key:        key,
		err:        err,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	target := e.collection
	if e.key != "" {
		target += "/" + e.key
	}

	return errors.Wrapf(e.err, "store %s %s", e.op, target).Error()
}

// Unwrap returns the backend error.
func (e *StoreError) Unwrap() error {
	return e.err
}

// Retryable is always true: every store write is an idempotent overwrite.
func (e *StoreError) Retryable() bool {
	return true
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return "STORE_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return "The database is unavailable, please retry"
}

// Details returns detailed error information
func (e *StoreError) Details() string {
	return e.op + " " + e.collection
}

// IsStoreError reports whether err is or wraps a StoreError.
func IsStoreError(err error) bool {
	var storeErr *StoreError

	return errors.As(err, &storeErr)
}
