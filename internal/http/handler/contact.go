package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pdfscan/internal/model"
	"pdfscan/internal/service"
)

type contactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	WorkspaceID *int64 `json:"workspace_id"`
}

// ListContacts handles GET /api/contact.
func ListContacts(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contacts, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Failed to fetch contacts")
		}
		return c.JSON(fiber.Map{
			"success":  true,
			"contacts": contacts,
		})
	}
}

// GetContact handles GET /api/contact/:id.
func GetContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusNotFound, "Contact not found")
		}

		contact, err := svc.Get(c.UserContext(), id)
		switch {
		case errors.Is(err, service.ErrNotFound):
			return writeError(c, fiber.StatusNotFound, "Contact not found")
		case err != nil:
			return writeError(c, fiber.StatusInternalServerError, "Failed to fetch contact")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"contact": contact,
		})
	}
}

// CreateContact handles POST /api/contact.
func CreateContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req contactRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		contact, err := svc.Create(c.UserContext(), &model.Contact{
			Name:        req.Name,
			Email:       req.Email,
			Phone:       req.Phone,
			WorkspaceID: req.WorkspaceID,
		})
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Failed to create contact")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"contact": contact,
		})
	}
}

// UpdateContact handles PUT /api/contact/:id.
func UpdateContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusNotFound, "Contact not found")
		}

		var req contactRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		contact, err := svc.Update(c.UserContext(), id, &model.Contact{
			Name:        req.Name,
			Email:       req.Email,
			Phone:       req.Phone,
			WorkspaceID: req.WorkspaceID,
		})
		switch {
		case errors.Is(err, service.ErrNotFound):
			return writeError(c, fiber.StatusNotFound, "Contact not found")
		case err != nil:
			return writeError(c, fiber.StatusInternalServerError, "Failed to update contact")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"contact": contact,
		})
	}
}

// DeleteContact handles DELETE /api/contact/:id.
func DeleteContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusNotFound, "Contact not found")
		}

		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Failed to delete contact")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Contact deleted successfully",
		})
	}
}
