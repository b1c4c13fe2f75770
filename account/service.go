// Package account implements signup, login, logout, and the profile, settings,
// and stats endpoints keyed by the authenticated identity.
package account

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/kbukum/textmorph/auth/password"
	"github.com/kbukum/textmorph/auth/token"
	"github.com/kbukum/textmorph/errors"
	"github.com/kbukum/textmorph/logger"
	"github.com/kbukum/textmorph/store"
)

// invalidCredentials is the single message for every credential failure on
// login. An unknown email and a wrong password must be indistinguishable to
// the caller, or the endpoint becomes a user-enumeration oracle.
const invalidCredentials = "invalid credentials"

// Session is the result of a successful signup or login.
type Session struct {
	Token string
	User  *store.User
}

// Service composes the credential store, password hasher, and token codec.
type Service struct {
	store  store.Store
	hasher *password.Hasher
	codec  *token.Codec
	log    *logger.Logger
}

// NewService creates the account service.
func NewService(st store.Store, hasher *password.Hasher, codec *token.Codec, log *logger.Logger) *Service {
	return &Service{
		store:  st,
		hasher: hasher,
		codec:  codec,
		log:    log.WithComponent("account"),
	}
}

// Signup registers a new user and issues a session token.
//
// The early existence check gives a friendly error on the common path; under
// concurrent signups for the same email the database uniqueness constraint is
// the real arbiter, and its violation maps to the same AlreadyExists.
func (s *Service) Signup(ctx context.Context, email, plaintext string) (*Session, error) {
	_, err := s.store.UserByEmail(ctx, email)
	if err == nil {
		return nil, errors.AlreadyExists("user")
	}
	if !stderrors.Is(err, store.ErrNotFound) {
		s.log.Error("signup lookup failed", logger.ErrorFields("signup", err))
		return nil, errors.Internal(err)
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		s.log.Error("password hash failed", logger.ErrorFields("signup", err))
		return nil, errors.Internal(err)
	}

	user, err := s.store.CreateUser(ctx, email, hash)
	if err != nil {
		if stderrors.Is(err, store.ErrDuplicateEmail) {
			return nil, errors.AlreadyExists("user")
		}
		s.log.Error("user insert failed", logger.ErrorFields("signup", err))
		return nil, errors.Internal(err)
	}

	return s.issueSession(user)
}

// Login verifies credentials and issues a session token.
func (s *Service) Login(ctx context.Context, email, plaintext string) (*Session, error) {
	user, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, errors.Unauthenticated(invalidCredentials)
		}
		s.log.Error("login lookup failed", logger.ErrorFields("login", err))
		return nil, errors.Internal(err)
	}

	if !s.hasher.Verify(plaintext, user.PasswordHash) {
		return nil, errors.Unauthenticated(invalidCredentials)
	}

	return s.issueSession(user)
}

func (s *Service) issueSession(user *store.User) (*Session, error) {
	tok, err := s.codec.Issue(user.ID, user.Email)
	if err != nil {
		s.log.Error("token issuance failed", logger.ErrorFields("issue", err))
		return nil, errors.Internal(err)
	}
	return &Session{Token: tok, User: user}, nil
}

// Profile returns the caller's identity record.
func (s *Service) Profile(ctx context.Context, userID string) (*store.User, error) {
	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			// The gateway resolved this id moments ago; the row vanishing
			// in between is possible but exceptional.
			return nil, errors.NotFound("user")
		}
		s.log.Error("profile lookup failed", logger.ErrorFields("profile", err))
		return nil, errors.Internal(err)
	}
	return user, nil
}

// SetLLMKey updates the caller's stored LLM API key.
func (s *Service) SetLLMKey(ctx context.Context, userID, key string) error {
	if err := s.store.SetLLMKey(ctx, userID, key); err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return errors.NotFound("user")
		}
		s.log.Error("llm key update failed", logger.ErrorFields("llm_key", err))
		return errors.Internal(err)
	}
	return nil
}

// Stats returns the caller's transformation usage summary.
func (s *Service) Stats(ctx context.Context, userID string) (*store.Stats, error) {
	stats, err := s.store.TransformationStats(ctx, userID)
	if err != nil {
		s.log.Error("stats lookup failed", logger.ErrorFields("stats", err))
		return nil, errors.Internal(err)
	}
	return stats, nil
}

// TokenTTL exposes the session token lifetime so the handler can align the
// cookie's Max-Age with the token expiry.
func (s *Service) TokenTTL() time.Duration {
	return s.codec.TTL()
}
