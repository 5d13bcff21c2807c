package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/soundfolio/artist-portal/internal/dto"
	"github.com/soundfolio/artist-portal/internal/models"
	"gorm.io/gorm"
)

type BookingService struct {
	db         *gorm.DB
	activities *ActivityService
}

func NewBookingService(db *gorm.DB, activities *ActivityService) *BookingService {
	return &BookingService{db: db, activities: activities}
}

// List returns the user's bookings by start time, optionally filtered by
// status or restricted to upcoming sessions.
func (s *BookingService) List(user *models.User, status string, upcoming bool) ([]models.Booking, error) {
	q := s.db.Where("user_id = ?", user.ID).Order("start_at")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if upcoming {
		q = q.Where("start_at >= ?", time.Now())
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// Create books a session and mints a meeting URL from the booking id.
func (s *BookingService) Create(user *models.User, req *dto.CreateBookingRequest) (string, error) {
	bookingID := uuid.New().String()
	meetingURL := fmt.Sprintf("https://meet.example.com/artist-portal/%s", bookingID[:8])

	booking := models.Booking{
		ID:          bookingID,
		UserID:      user.ID,
		SessionType: req.SessionType,
		Title:       req.Title,
		Description: req.Description,
		StartAt:     *req.StartAt,
		EndAt:       *req.EndAt,
		Status:      models.BookingScheduled,
		MeetingURL:  &meetingURL,
	}
	if err := s.db.Create(&booking).Error; err != nil {
		return "", fmt.Errorf("failed to create booking: %w", err)
	}

	entityType := "booking"
	s.activities.RecordBestEffort(&user.ID, "booking", "scheduled", &entityType, &bookingID, nil)

	return bookingID, nil
}

// Update patches a booking. Only the owner or an admin may change it.
func (s *BookingService) Update(user *models.User, bookingID string, req *dto.UpdateBookingRequest) (cancelled bool, err error) {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrBookingNotFound
		}
		return false, fmt.Errorf("failed to load booking: %w", err)
	}
	if booking.UserID != user.ID && user.Role != models.RoleAdmin {
		return false, ErrAccessDenied
	}

	updates := map[string]interface{}{}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.StartAt != nil {
		updates["start_at"] = *req.StartAt
	}
	if req.EndAt != nil {
		updates["end_at"] = *req.EndAt
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) > 0 {
		if err := s.db.Model(&booking).Updates(updates).Error; err != nil {
			return false, fmt.Errorf("failed to update booking: %w", err)
		}
	}

	cancelled = req.Status != nil && *req.Status == models.BookingCancelled
	action := "updated"
	if cancelled {
		action = "cancelled"
	}
	entityType := "booking"
	s.activities.RecordBestEffort(&user.ID, "booking", action, &entityType, &bookingID, nil)

	return cancelled, nil
}
