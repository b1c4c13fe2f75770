package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeUnauthenticated indicates the caller could not be authenticated.
	// The message attached to it is intentionally generic: missing, expired,
	// and tampered tokens, as well as bad credentials, are indistinguishable
	// to the client.
	ErrCodeUnauthenticated ErrorCode = "UNAUTHENTICATED"

	// ErrCodeAlreadyExists indicates the resource already exists.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeInvalidArgument indicates the request shape or a field value is invalid.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// ErrCodeFailedPrecondition indicates the request cannot proceed until the
	// caller changes some state (e.g. a missing API key in settings).
	ErrCodeFailedPrecondition ErrorCode = "FAILED_PRECONDITION"

	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL"

	// ErrCodeExternalService indicates an error from an upstream service.
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
)
