package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soundfolio/artist-portal/internal/dto"
	"github.com/soundfolio/artist-portal/internal/middleware"
	"github.com/soundfolio/artist-portal/internal/services"
)

type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List returns the activity feed: admins see every row, artists only their
// own.
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Authentication required",
		})
	}

	rows, err := h.activityService.List(user, c.QueryInt("limit", 20))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list activities")
	}
	return c.JSON(dto.ActivitiesResponse{Success: true, Activities: rows})
}
