package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"pdfscan/internal/auth"
)

const (
	// UserIDLocalKey is the context locals key holding the authenticated user id.
	UserIDLocalKey = "user_id"
	// UsernameLocalKey is the context locals key holding the authenticated username.
	UsernameLocalKey = "username"
)

// Auth is the authentication gate: it requires a valid bearer token and
// attaches the decoded {userId, username} to the request locals. The errors
// are surfaced through the global error handler as envelope responses.
func Auth(tokens *auth.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Access token required")
		}

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		c.Locals(UserIDLocalKey, claims.UserID)
		c.Locals(UsernameLocalKey, claims.Username)

		return c.Next()
	}
}

// OptionalAuth attaches claims when a valid bearer token is present but never
// rejects the request. Used by uploads, which accept anonymous callers.
func OptionalAuth(tokens *auth.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenStr := bearerToken(c); tokenStr != "" {
			if claims, err := tokens.Verify(tokenStr); err == nil {
				c.Locals(UserIDLocalKey, claims.UserID)
				c.Locals(UsernameLocalKey, claims.Username)
			}
		}
		return c.Next()
	}
}

// AuthedUserID returns the authenticated user id from locals, if any.
func AuthedUserID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(UserIDLocalKey).(int64)
	return id, ok
}

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
