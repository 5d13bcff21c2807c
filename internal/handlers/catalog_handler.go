package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soundfolio/artist-portal/internal/dto"
	"github.com/soundfolio/artist-portal/internal/models"
	"gorm.io/gorm"
)

// CatalogHandler serves the public plan and addon catalog.
type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

func (h *CatalogHandler) Plans(c *fiber.Ctx) error {
	var plans []models.Plan
	if err := h.db.Where("active = ?", true).Order("sort_order").Find(&plans).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list plans")
	}
	return c.JSON(dto.PlansResponse{Success: true, Plans: plans})
}

func (h *CatalogHandler) Addons(c *fiber.Ctx) error {
	category := c.Query("category")
	if category != "" && !contains(models.AddonCategories, category) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid category",
		})
	}

	q := h.db.Where("active = ?", true).Order("sort_order")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var addons []models.Addon
	if err := q.Find(&addons).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list addons")
	}
	return c.JSON(dto.AddonsResponse{Success: true, Addons: addons})
}
