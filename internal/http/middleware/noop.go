package middleware

import "github.com/gofiber/fiber/v2"

// Noop passes the request through untouched. Useful as a placeholder when a
// middleware slot must be filled conditionally.
func Noop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}
