package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/soundfolio/artist-portal/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PurchaseService struct {
	db         *gorm.DB
	activities *ActivityService
}

func NewPurchaseService(db *gorm.DB, activities *ActivityService) *PurchaseService {
	return &PurchaseService{db: db, activities: activities}
}

// Purchase provisions an addon for the user: one project, one deliverable
// per scope line item (in order), the purchase row and the audit row, all
// in a single transaction. Any failure rolls everything back.
func (s *PurchaseService) Purchase(user *models.User, addonID string) (string, string, error) {
	var addon models.Addon
	if err := s.db.First(&addon, "id = ?", addonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrAddonNotFound
		}
		return "", "", fmt.Errorf("failed to load addon: %w", err)
	}

	project, deliverables, purchase := provisionAddon(user, &addon, time.Now())

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}
		for i := range deliverables {
			if err := tx.Create(&deliverables[i]).Error; err != nil {
				return fmt.Errorf("failed to create deliverable: %w", err)
			}
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return fmt.Errorf("failed to record purchase: %w", err)
		}

		entityType := "addon"
		return s.activities.Record(tx, &user.ID, "purchase", "purchased", &entityType, &addon.ID, nil)
	})
	if err != nil {
		return "", "", err
	}

	return project.ID, addon.Name, nil
}

// provisionAddon builds the rows a purchase creates: the project, its
// deliverables (one per scope line, in order, not started) and the purchase
// record. Everything shares the addon's delivery due date.
func provisionAddon(user *models.User, addon *models.Addon, now time.Time) (models.Project, []models.Deliverable, models.Purchase) {
	dueDate := now.AddDate(0, 0, addon.DeliveryDays)
	projectID := uuid.New().String()

	project := models.Project{
		ID:          projectID,
		UserID:      user.ID,
		Title:       addon.Name,
		Description: addon.Description,
		Type:        models.ProjectTypeAddon,
		Status:      models.ProjectActive,
		Progress:    0,
		StartDate:   &now,
		DueDate:     &dueDate,
		Meta:        datatypes.JSON(fmt.Sprintf(`{"addonId":%q}`, addon.ID)),
		CreatedAt:   now,
	}

	deliverables := make([]models.Deliverable, 0, len(addon.Scope))
	for i, title := range addon.Scope {
		if title == "" {
			continue
		}
		deliverables = append(deliverables, models.Deliverable{
			ID:        uuid.New().String(),
			ProjectID: projectID,
			Title:     title,
			Status:    models.DeliverableNotStarted,
			Priority:  "medium",
			DueDate:   &dueDate,
			SortOrder: i,
			CreatedAt: now,
		})
	}

	purchase := models.Purchase{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		AddonID:   addon.ID,
		ProjectID: &projectID,
		Amount:    addon.Price,
		Status:    models.PurchaseCompleted,
		CreatedAt: now,
	}

	return project, deliverables, purchase
}
