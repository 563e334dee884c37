package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pdfscan/internal/http/middleware"
	"pdfscan/internal/model"
	"pdfscan/internal/service"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	envelope
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Register handles POST /api/register.
func Register(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		user, token, err := svc.Register(c.UserContext(), req.Username, req.Email, req.Password)
		switch {
		case errors.Is(err, service.ErrMissingFields):
			return writeError(c, fiber.StatusBadRequest, "Username, email, and password are required")
		case errors.Is(err, service.ErrUserExists):
			return writeError(c, fiber.StatusBadRequest, "User already exists")
		case err != nil:
			return writeError(c, fiber.StatusInternalServerError, "Internal server error")
		}

		return c.Status(fiber.StatusCreated).JSON(sessionResponse{
			envelope: envelope{Success: true, Message: "User registered successfully"},
			User:     user,
			Token:    token,
		})
	}
}

// Login handles POST /api/login.
func Login(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		user, token, err := svc.Login(c.UserContext(), req.Email, req.Password)
		switch {
		case errors.Is(err, service.ErrMissingFields):
			return writeError(c, fiber.StatusBadRequest, "Email and password are required")
		case errors.Is(err, service.ErrInvalidCredentials):
			return writeError(c, fiber.StatusUnauthorized, "Invalid credentials")
		case err != nil:
			return writeError(c, fiber.StatusInternalServerError, "Internal server error")
		}

		return c.JSON(sessionResponse{
			envelope: envelope{Success: true, Message: "Login successful"},
			User:     user,
			Token:    token,
		})
	}
}

// Profile handles GET /api/profile. Runs behind the auth gate.
func Profile(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := middleware.AuthedUserID(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "Access token required")
		}

		user, err := svc.Profile(c.UserContext(), userID)
		switch {
		case errors.Is(err, service.ErrNotFound):
			return writeError(c, fiber.StatusNotFound, "User not found")
		case err != nil:
			return writeError(c, fiber.StatusInternalServerError, "Internal server error")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"user":    user,
		})
	}
}
