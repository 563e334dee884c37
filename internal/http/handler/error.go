package handler

import (
	"github.com/gofiber/fiber/v2"

	"pdfscan/internal/http/middleware"
)

// envelope is the uniform response body: success, an optional message, and
// any payload fields. Errors additionally carry the request id.
type envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error envelope without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(envelope{
		Success:   false,
		Message:   message,
		RequestID: requestIDFromCtx(c),
	})
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses. Errors raised by middleware (the auth gate, the body limit)
// land here and come out as envelopes.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := ""
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
			message = e.Message
		}

		switch {
		case status == fiber.StatusRequestEntityTooLarge:
			// Body limit fires before any multipart parsing happens.
			return writeError(c, status, "File too large. Maximum size is 10MB")
		case status >= fiber.StatusInternalServerError:
			return writeError(c, status, "Internal server error")
		case message == "":
			return writeError(c, status, "Bad request")
		default:
			return writeError(c, status, message)
		}
	}
}
