// Package authctx propagates the authenticated caller's identity through the
// request context. The auth gateway stores an Identity after verifying the
// session token and re-resolving the user; handlers read it back here. This is
// the only channel through which downstream code learns who is calling.
package authctx

import (
	"context"
	"errors"
)

// Identity is the resolved caller identity attached to authenticated requests.
type Identity struct {
	UserID string
	Email  string
}

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

var identityKey = contextKey{}

// ErrNoIdentity is returned when no identity is present in the context.
var ErrNoIdentity = errors.New("authctx: no identity in context")

// Set stores the caller identity in the context.
func Set(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// Get retrieves the caller identity from the context.
func Get(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// MustGet retrieves the caller identity or panics. Use only behind the auth
// gateway, which guarantees an identity is present.
func MustGet(ctx context.Context) Identity {
	id, ok := Get(ctx)
	if !ok {
		panic("authctx: identity not found in context")
	}
	return id
}

// GetOrError retrieves the caller identity, returning ErrNoIdentity if absent.
func GetOrError(ctx context.Context) (Identity, error) {
	id, ok := Get(ctx)
	if !ok {
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}
