package middleware

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/textmorph/auth/authctx"
	"github.com/kbukum/textmorph/auth/token"
	"github.com/kbukum/textmorph/errors"
	"github.com/kbukum/textmorph/logger"
	"github.com/kbukum/textmorph/store"
)

// SessionCookie is the cookie carrying the session token for browser clients.
const SessionCookie = "session"

// UserResolver re-resolves a user id to a live identity record.
type UserResolver interface {
	UserByID(ctx context.Context, id string) (*store.User, error)
}

// Auth returns the gateway middleware guarding every protected route.
//
// It extracts the session token (Authorization bearer header first, session
// cookie as fallback), verifies it, then re-fetches the user from the store:
// a token stays cryptographically valid after its subject is deleted, so
// identity freshness is re-derived on every request rather than trusted from
// the token alone. On success the resolved identity is attached to the request
// context; every failure terminates the request with a 401.
//
// The precise verification failure (malformed, bad signature, expired) is
// logged but never echoed to the caller.
func Auth(codec *token.Codec, users UserResolver, log *logger.Logger) gin.HandlerFunc {
	log = log.WithComponent("auth")

	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			abortUnauthenticated(c, "missing token")
			return
		}

		claims, err := codec.Verify(raw)
		if err != nil {
			log.Warn("token rejected", logger.Fields(
				"reason", err.Error(),
				"path", c.Request.URL.Path,
			))
			abortUnauthenticated(c, "invalid token")
			return
		}

		user, err := users.UserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if stderrors.Is(err, store.ErrNotFound) {
				abortUnauthenticated(c, "user not found")
				return
			}
			log.Error("user lookup failed", logger.ErrorFields("resolve", err))
			appErr := errors.Internal(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
			return
		}

		identity := authctx.Identity{UserID: user.ID, Email: user.Email}
		c.Request = c.Request.WithContext(authctx.Set(c.Request.Context(), identity))
		c.Next()
	}
}

// bearerToken extracts the raw token from the Authorization header, falling
// back to the session cookie for browser clients.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

func abortUnauthenticated(c *gin.Context, reason string) {
	appErr := errors.Unauthenticated(reason)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}
