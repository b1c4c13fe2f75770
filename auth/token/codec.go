// Package token signs and verifies compact, self-contained session tokens.
//
// Tokens are HS256 JWTs over a closed claims structure: subject id, email, and
// expiry. The signing secret is process-wide state, loaded once at startup and
// never mutated; changing it invalidates every outstanding token.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures. The specific reason is for server-side logging only;
// callers facing a client must collapse all three into one generic message.
var (
	// ErrMalformed indicates the token string could not be parsed or its
	// claims do not match the expected structure.
	ErrMalformed = errors.New("token: malformed")
	// ErrBadSignature indicates the signature does not match the secret.
	ErrBadSignature = errors.New("token: signature invalid")
	// ErrExpired indicates the token is past its expiry.
	ErrExpired = errors.New("token: expired")
)

// Claims is the closed payload embedded in a session token. There is no
// open-ended claim bag; tokens whose structure does not match are rejected.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Codec issues and verifies session tokens with a single symmetric secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a token codec from config.
func NewCodec(cfg Config) (*Codec, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Codec{secret: []byte(cfg.Secret), ttl: cfg.TTL}, nil
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for the given identity using the configured TTL.
func (c *Codec) Issue(userID, email string) (string, error) {
	return c.IssueWithTTL(userID, email, c.ttl)
}

// IssueWithTTL signs a token for the given identity expiring after ttl.
func (c *Codec) IssueWithTTL(userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Email:  email,
	})
	return t.SignedString(c.secret)
}

// Verify parses and validates a token string. It returns the claims, or one of
// ErrMalformed, ErrBadSignature, ErrExpired.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		default:
			return nil, ErrMalformed
		}
	}
	if !t.Valid || claims.UserID == "" {
		return nil, ErrMalformed
	}
	return claims, nil
}
