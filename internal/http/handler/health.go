package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports readiness. With the relational capability enabled the
// database is pinged; db is nil otherwise and the check is skipped.
func HealthCheck(db *sql.DB, caps Capabilities) fiber.Handler {
	return func(c *fiber.Ctx) error {
		database := "not configured"
		if caps.Relational && db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"success":  false,
					"status":   "unhealthy",
					"database": "unreachable",
				})
			}
			database = "connected"
		}

		archive := "not configured"
		if caps.Archive {
			archive = "configured"
		}

		return c.JSON(fiber.Map{
			"success":  true,
			"status":   "healthy",
			"database": database,
			"archive":  archive,
		})
	}
}

// LivenessProbe always answers OK while the process is up.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
