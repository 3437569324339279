// Package errors defines the coded errors services return and the HTTP
// status each code maps to.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a structured error code
type ErrorCode string

const (
	// A resource is absent, hidden from the caller, or owned by someone else
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Malformed or out-of-range input
	ErrCodeValidation   ErrorCode = "VALIDATION"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// The catalog could not answer
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE"

	// Too many requests from one client
	ErrCodeAPIRateLimit ErrorCode = "API_RATE_LIMIT"

	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

var httpCodes = map[ErrorCode]int{
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeExternalService: http.StatusBadGateway,
	ErrCodeAPIRateLimit:    http.StatusTooManyRequests,
	ErrCodeUnauthorized:    http.StatusUnauthorized,
}

// AppError represents a structured application error
type AppError struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Cause   error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// HTTPCode returns the status the error is reported with
func (e *AppError) HTTPCode() int {
	if code, ok := httpCodes[e.Code]; ok {
		return code
	}
	return http.StatusInternalServerError
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Wrap(cause error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

// NotFound creates a not found error. Callers use it both for rows that do
// not exist and for rows owned by someone else.
func NotFound(resource string, id any) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", resource)).
		WithDetail("resource", resource).
		WithDetail("id", id)
}

// ValidationError creates a validation error
func ValidationError(field string, reason string) *AppError {
	return New(ErrCodeValidation, fmt.Sprintf("validation failed for field '%s': %s", field, reason)).
		WithDetail("field", field).
		WithDetail("reason", reason)
}

// RemoteUnavailable creates an error for a catalog call that failed for a
// reason other than confirmed non-existence.
func RemoteUnavailable(service string, cause error) *AppError {
	return Wrap(cause, ErrCodeExternalService, fmt.Sprintf("external service '%s' unavailable", service)).
		WithDetail("service", service)
}

// Unauthorized creates an authentication error. cause may be nil.
func Unauthorized(message string, cause error) *AppError {
	return Wrap(cause, ErrCodeUnauthorized, message)
}

// Internal creates an error whose message is never shown to clients
func Internal(message string) *AppError {
	return New(ErrCodeInternal, message)
}

// RateLimited creates the error returned to clients over their request budget
func RateLimited() *AppError {
	return New(ErrCodeAPIRateLimit, "Rate limit exceeded. Please slow down your requests.")
}

// As returns the first AppError in err's chain
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is checks if an error is of a specific type
func Is(err error, code ErrorCode) bool {
	if appErr, ok := As(err); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}

// GetHTTPCode extracts the HTTP status code from an error
func GetHTTPCode(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.HTTPCode()
	}
	return http.StatusInternalServerError
}
