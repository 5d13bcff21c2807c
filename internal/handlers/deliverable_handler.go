package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/soundfolio/artist-portal/internal/dto"
	"github.com/soundfolio/artist-portal/internal/middleware"
	"github.com/soundfolio/artist-portal/internal/services"
)

type DeliverableHandler struct {
	deliverableService *services.DeliverableService
}

func NewDeliverableHandler(deliverableService *services.DeliverableService) *DeliverableHandler {
	return &DeliverableHandler{deliverableService: deliverableService}
}

func (h *DeliverableHandler) List(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Authentication required",
		})
	}

	rows, err := h.deliverableService.List(user, c.Query("status"), c.Query("projectId"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list deliverables")
	}
	return c.JSON(dto.DeliverablesResponse{Success: true, Deliverables: rows})
}

func (h *DeliverableHandler) Update(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Authentication required",
		})
	}

	var req dto.UpdateDeliverableRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	if err := h.deliverableService.Update(user, c.Params("id"), &req); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: "Invalid status value",
			})
		case errors.Is(err, services.ErrDeliverableNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: "Deliverable not found",
			})
		case errors.Is(err, services.ErrAccessDenied):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Success: false, Message: "Access denied",
			})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update deliverable")
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: "Deliverable updated successfully"})
}
