package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/soundfolio/artist-portal/internal/dto"
	"github.com/soundfolio/artist-portal/internal/middleware"
	"github.com/soundfolio/artist-portal/internal/services"
)

// CommerceHandler covers the simulated money flows: addon purchases and
// plan subscriptions.
type CommerceHandler struct {
	purchaseService     *services.PurchaseService
	subscriptionService *services.SubscriptionService
}

func NewCommerceHandler(purchaseService *services.PurchaseService, subscriptionService *services.SubscriptionService) *CommerceHandler {
	return &CommerceHandler{
		purchaseService:     purchaseService,
		subscriptionService: subscriptionService,
	}
}

func (h *CommerceHandler) PurchaseAddon(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Authentication required",
		})
	}

	var req dto.PurchaseAddonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}
	if req.AddonID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Addon ID is required",
		})
	}

	projectID, addonName, err := h.purchaseService.Purchase(user, req.AddonID)
	if err != nil {
		if errors.Is(err, services.ErrAddonNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: "Add-on not found",
			})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Purchase failed")
	}

	return c.JSON(dto.PurchaseAddonResponse{
		Success:   true,
		Message:   fmt.Sprintf("Successfully purchased %s", addonName),
		ProjectID: projectID,
	})
}

func (h *CommerceHandler) Subscribe(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Authentication required",
		})
	}

	var req dto.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}
	if req.PlanID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Plan ID is required",
		})
	}

	message, err := h.subscriptionService.Subscribe(user, req.PlanID)
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Success: false, Message: "Plan not found",
			})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Subscription failed")
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: message})
}
