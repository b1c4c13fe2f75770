// Package errors provides unified error handling for the textmorph backend.
// It implements a structured error type with stable machine-readable codes and
// HTTP status mapping. Messages are safe to echo to clients; the underlying
// cause never is and stays server-side.
package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable, client-safe error message.
	Message string `json:"message"`
	// HTTPStatus is the HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional client-safe context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error. Logged, never serialized.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// --- Common Error Constructors ---

// Unauthenticated creates a new AppError for a request that could not be
// authenticated. Callers must take care that reason does not distinguish
// between credential-failure modes an attacker could enumerate.
func Unauthenticated(reason string) *AppError {
	if reason == "" {
		reason = "authentication required"
	}
	return &AppError{
		Code: ErrCodeUnauthenticated, Message: reason,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// AlreadyExists creates a new AppError for a resource that already exists.
func AlreadyExists(resource string) *AppError {
	return &AppError{
		Code: ErrCodeAlreadyExists, Message: fmt.Sprintf("a %s with these details already exists", resource),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"resource": resource},
	}
}

// NotFound creates a new AppError for a resource that was not found.
func NotFound(resource string) *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"resource": resource},
	}
}

// InvalidArgument creates a new AppError for an invalid request.
func InvalidArgument(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: reason,
		HTTPStatus: http.StatusBadRequest,
	}
}

// FailedPrecondition creates a new AppError for a request that cannot proceed
// until the caller changes some state.
func FailedPrecondition(reason string) *AppError {
	return &AppError{
		Code: ErrCodeFailedPrecondition, Message: reason,
		HTTPStatus: http.StatusPreconditionFailed,
	}
}

// Internal creates a new AppError for an internal server error. The cause is
// kept for server-side logging only.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "an unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}

// ExternalService creates a new AppError for an upstream service failure.
func ExternalService(service string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeExternalService, Message: fmt.Sprintf("the %s service encountered an error", service),
		HTTPStatus: http.StatusBadGateway, Cause: cause,
		Details: map[string]any{"service": service},
	}
}
