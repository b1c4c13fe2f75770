// Package store is the persistence boundary for identity and usage records.
// It is the sole source of truth for users; email uniqueness is enforced by
// the database constraint, not application code, so it holds under concurrent
// writers.
package store

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors mapped by callers to their transport-level equivalents.
var (
	// ErrNotFound indicates no row matched the lookup.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicateEmail indicates the users email uniqueness constraint fired.
	ErrDuplicateEmail = errors.New("store: email already registered")
)

// User is an identity record. PasswordHash and LLMAPIKey are secrets and must
// never be serialized to any caller.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	LLMAPIKey    string // empty when unset
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasLLMKey reports whether the user has configured an LLM API key.
func (u *User) HasLLMKey() bool {
	return u.LLMAPIKey != ""
}

// Transformation is one entry in the append-only transformation log.
type Transformation struct {
	ID              string
	UserID          string
	Command         string
	SelectedText    string
	TransformedText string
	CreatedAt       time.Time
}

// Stats summarizes a user's transformation history.
type Stats struct {
	Total  int64
	Recent []Transformation
}

// Store is the credential and usage persistence abstraction.
type Store interface {
	// CreateUser inserts a new user with a server-assigned id. Returns
	// ErrDuplicateEmail if the email is already registered.
	CreateUser(ctx context.Context, email, passwordHash string) (*User, error)

	// UserByEmail returns the user with the given email, or ErrNotFound.
	UserByEmail(ctx context.Context, email string) (*User, error)

	// UserByID returns the user with the given id, or ErrNotFound.
	UserByID(ctx context.Context, id string) (*User, error)

	// SetLLMKey updates the user's LLM API key, or ErrNotFound.
	SetLLMKey(ctx context.Context, userID, key string) error

	// AddTransformation appends a record to the transformation log and fills
	// in its server-assigned id and timestamp.
	AddTransformation(ctx context.Context, t *Transformation) error

	// TransformationStats returns the total count and the five most recent
	// transformations for the user, newest first.
	TransformationStats(ctx context.Context, userID string) (*Stats, error)
}
