package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/soundfolio/artist-portal/internal/dto"
	"github.com/soundfolio/artist-portal/internal/middleware"
	"github.com/soundfolio/artist-portal/internal/models"
	"github.com/soundfolio/artist-portal/internal/services"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

func (h *BookingHandler) List(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Authentication required",
		})
	}

	bookings, err := h.bookingService.List(user, c.Query("status"), c.Query("upcoming") == "true")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list bookings")
	}
	return c.JSON(dto.BookingsResponse{Success: true, Bookings: bookings})
}

func (h *BookingHandler) Create(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Authentication required",
		})
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}
	if msg, ok := validateCreateBooking(&req); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: msg,
		})
	}

	bookingID, err := h.bookingService.Create(user, &req)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to book session")
	}

	return c.JSON(dto.CreateBookingResponse{
		Success:   true,
		Message:   "Session booked successfully",
		BookingID: bookingID,
	})
}

func (h *BookingHandler) Update(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Authentication required",
		})
	}

	var req dto.UpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}
	if req.Status != nil && !contains(models.BookingStatuses, *req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid status value",
		})
	}

	cancelled, err := h.bookingService.Update(user, c.Params("id"), &req)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: "Booking not found",
			})
		}
		if errors.Is(err, services.ErrAccessDenied) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Success: false, Message: "Access denied",
			})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update booking")
	}

	message := "Booking updated"
	if cancelled {
		message = "Booking cancelled"
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: message})
}

func validateCreateBooking(req *dto.CreateBookingRequest) (string, bool) {
	if !contains(models.SessionTypes, req.SessionType) {
		return "Invalid session type", false
	}
	if req.Title == "" {
		return "Title is required", false
	}
	if req.StartAt == nil || req.EndAt == nil {
		return "Start and end time are required", false
	}
	if !req.EndAt.After(*req.StartAt) {
		return "End time must be after start time", false
	}
	return "", true
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
