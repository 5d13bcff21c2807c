package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soundfolio/artist-portal/internal/dto"
	"github.com/soundfolio/artist-portal/internal/middleware"
	"github.com/soundfolio/artist-portal/internal/models"
	"gorm.io/gorm"
)

// InsightsHandler serves the per-user dashboard listings: notifications,
// goals and metrics. Plain owner-scoped reads, no cross-entity logic.
type InsightsHandler struct {
	db *gorm.DB
}

func NewInsightsHandler(db *gorm.DB) *InsightsHandler {
	return &InsightsHandler{db: db}
}

func (h *InsightsHandler) Notifications(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Authentication required",
		})
	}

	notifType := c.Query("type")
	if notifType != "" && !contains(models.NotificationTypes, notifType) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid notification type",
		})
	}

	q := h.db.Where("user_id = ?", user.ID).Order("created_at DESC")
	if c.Query("unread") == "true" {
		q = q.Where("read_at IS NULL")
	}
	if notifType != "" {
		q = q.Where("type = ?", notifType)
	}

	var notifications []models.Notification
	if err := q.Find(&notifications).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list notifications")
	}
	return c.JSON(dto.NotificationsResponse{Success: true, Notifications: notifications})
}

func (h *InsightsHandler) Goals(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Authentication required",
		})
	}

	var goals []models.Goal
	if err := h.db.Where("user_id = ?", user.ID).Find(&goals).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list goals")
	}
	return c.JSON(dto.GoalsResponse{Success: true, Goals: goals})
}

func (h *InsightsHandler) Metrics(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Message: "Authentication required",
		})
	}

	metricType := c.Query("type")
	if metricType != "" && !contains(models.MetricTypes, metricType) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid metric type",
		})
	}

	q := h.db.Where("user_id = ?", user.ID).Order("date")
	if metricType != "" {
		q = q.Where("type = ?", metricType)
	}

	var metrics []models.Metric
	if err := q.Find(&metrics).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list metrics")
	}
	return c.JSON(dto.MetricsResponse{Success: true, Metrics: metrics})
}
