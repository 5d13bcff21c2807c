package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/soundfolio/artist-portal/internal/dto"
	"github.com/soundfolio/artist-portal/internal/middleware"
	"github.com/soundfolio/artist-portal/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Authentication required",
		})
	}

	projects, err := h.projectService.List(user, c.Query("status"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list projects")
	}
	return c.JSON(dto.ProjectsResponse{Success: true, Projects: projects})
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Authentication required",
		})
	}

	detail, err := h.projectService.Get(user, c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: "Project not found",
			})
		}
		if errors.Is(err, services.ErrAccessDenied) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Success: false, Message: "Access denied",
			})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load project")
	}
	return c.JSON(dto.ProjectDetailResponse{Success: true, Project: *detail})
}
