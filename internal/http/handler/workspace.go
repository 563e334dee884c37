package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pdfscan/internal/service"
)

type workspaceRequest struct {
	Name string `json:"name"`
}

// ListWorkspaces handles GET /api/workspaces.
func ListWorkspaces(svc service.WorkspaceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		workspaces, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Failed to fetch workspaces")
		}
		return c.JSON(fiber.Map{
			"success":    true,
			"workspaces": workspaces,
		})
	}
}

// CreateWorkspace handles POST /api/workspaces.
func CreateWorkspace(svc service.WorkspaceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req workspaceRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		ws, err := svc.Create(c.UserContext(), req.Name)
		switch {
		case errors.Is(err, service.ErrNameRequired):
			return writeError(c, fiber.StatusBadRequest, "Name is required")
		case err != nil:
			return writeError(c, fiber.StatusInternalServerError, "Failed to create workspace")
		}

		return c.JSON(fiber.Map{
			"success":   true,
			"workspace": ws,
		})
	}
}

// UpdateWorkspace handles PUT /api/workspaces/:id.
func UpdateWorkspace(svc service.WorkspaceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusNotFound, "Workspace not found")
		}

		var req workspaceRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		ws, err := svc.Update(c.UserContext(), id, req.Name)
		switch {
		case errors.Is(err, service.ErrNameRequired):
			return writeError(c, fiber.StatusBadRequest, "Name is required")
		case errors.Is(err, service.ErrNotFound):
			return writeError(c, fiber.StatusNotFound, "Workspace not found")
		case err != nil:
			return writeError(c, fiber.StatusInternalServerError, "Failed to update workspace")
		}

		return c.JSON(fiber.Map{
			"success":   true,
			"workspace": ws,
		})
	}
}

// DeleteWorkspace handles DELETE /api/workspaces/:id.
func DeleteWorkspace(svc service.WorkspaceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusNotFound, "Workspace not found")
		}

		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Failed to delete workspace")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Workspace deleted successfully",
		})
	}
}
