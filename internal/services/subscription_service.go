package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/soundfolio/artist-portal/internal/models"
	"gorm.io/gorm"
)

type SubscriptionService struct {
	db         *gorm.DB
	activities *ActivityService
}

func NewSubscriptionService(db *gorm.DB, activities *ActivityService) *SubscriptionService {
	return &SubscriptionService{db: db, activities: activities}
}

// Subscribe puts the user on a plan. An existing subscription is moved to
// the new plan; otherwise a fresh one starts. Billing is simulated: the
// period is a flat 30 days.
func (s *SubscriptionService) Subscribe(user *models.User, planID string) (string, error) {
	var plan models.Plan
	if err := s.db.First(&plan, "id = ?", planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrPlanNotFound
		}
		return "", fmt.Errorf("failed to load plan: %w", err)
	}

	now := time.Now()
	periodEnd := now.AddDate(0, 0, 30)

	var existing models.Subscription
	err := s.db.Where("user_id = ?", user.ID).First(&existing).Error
	upgraded := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to load subscription: %w", err)
	}

	if upgraded {
		if err := s.db.Model(&existing).Updates(map[string]interface{}{
			"plan_id":              planID,
			"status":               models.SubscriptionActive,
			"current_period_start": now,
			"current_period_end":   periodEnd,
		}).Error; err != nil {
			return "", fmt.Errorf("failed to update subscription: %w", err)
		}
	} else {
		sub := models.Subscription{
			ID:                 uuid.New().String(),
			UserID:             user.ID,
			PlanID:             planID,
			Status:             models.SubscriptionActive,
			CurrentPeriodStart: &now,
			CurrentPeriodEnd:   &periodEnd,
		}
		if err := s.db.Create(&sub).Error; err != nil {
			return "", fmt.Errorf("failed to create subscription: %w", err)
		}
	}

	action := "subscribed"
	verb := "subscribed to"
	if upgraded {
		action = "upgraded"
		verb = "upgraded to"
	}
	entityType := "plan"
	s.activities.RecordBestEffort(&user.ID, "subscription", action, &entityType, &planID, nil)

	return fmt.Sprintf("Successfully %s %s plan", verb, plan.Name), nil
}
