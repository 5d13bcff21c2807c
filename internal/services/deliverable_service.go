package services

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/soundfolio/artist-portal/internal/dto"
	"github.com/soundfolio/artist-portal/internal/models"
	"gorm.io/gorm"
)

type DeliverableService struct {
	db         *gorm.DB
	activities *ActivityService
}

func NewDeliverableService(db *gorm.DB, activities *ActivityService) *DeliverableService {
	return &DeliverableService{db: db, activities: activities}
}

// List returns deliverables across the user's own projects, joined with the
// project title, ordered by due date. Optional status and project filters.
func (s *DeliverableService) List(user *models.User, status, projectID string) ([]dto.DeliverableRow, error) {
	q := s.db.Table("deliverables").
		Select("deliverables.*, projects.title AS project_title").
		Joins("LEFT JOIN projects ON projects.id = deliverables.project_id").
		Where("projects.user_id = ?", user.ID).
		Order("deliverables.due_date")

	if status != "" {
		q = q.Where("deliverables.status = ?", status)
	}
	if projectID != "" {
		q = q.Where("deliverables.project_id = ?", projectID)
	}

	var rows []dto.DeliverableRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list deliverables: %w", err)
	}
	return rows, nil
}

// Update applies a status change and/or appends a comment. Only the owning
// user or an admin may mutate a deliverable. The status write, its activity
// row and the project progress recompute commit as one transaction.
func (s *DeliverableService) Update(user *models.User, deliverableID string, req *dto.UpdateDeliverableRequest) error {
	if req.Status != nil && !models.ValidDeliverableStatus(*req.Status) {
		return ErrInvalidStatus
	}

	var deliverable models.Deliverable
	if err := s.db.First(&deliverable, "id = ?", deliverableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDeliverableNotFound
		}
		return fmt.Errorf("failed to load deliverable: %w", err)
	}

	var project models.Project
	if err := s.db.First(&project, "id = ?", deliverable.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccessDenied
		}
		return fmt.Errorf("failed to load project: %w", err)
	}
	if project.UserID != user.ID && user.Role != models.RoleAdmin {
		return ErrAccessDenied
	}

	now := time.Now()
	return s.db.Transaction(func(tx *gorm.DB) error {
		if req.Status != nil {
			if err := s.applyStatus(tx, &deliverable, &project, user, *req.Status, now); err != nil {
				return err
			}
		}

		if req.Comment != nil && *req.Comment != "" {
			comment := models.DeliverableComment{
				ID:            uuid.New().String(),
				DeliverableID: deliverable.ID,
				AuthorID:      user.ID,
				Content:       *req.Comment,
				IsInternal:    false,
				CreatedAt:     now,
			}
			if err := tx.Create(&comment).Error; err != nil {
				return fmt.Errorf("failed to add comment: %w", err)
			}
		}

		return nil
	})
}

// applyStatus is the single path for status writes: it owns the completion
// timestamp, the audit row and the progress recompute. The workflow itself
// stays permissive; irregular transitions are only logged.
func (s *DeliverableService) applyStatus(tx *gorm.DB, deliverable *models.Deliverable, project *models.Project, actor *models.User, status string, now time.Time) error {
	if !models.NominalTransition(deliverable.Status, status) {
		slog.Warn("irregular deliverable transition",
			"deliverable_id", deliverable.ID, "from", deliverable.Status, "to", status)
	}

	completedAt := CompletionTimestamp(status, now)
	if err := tx.Model(deliverable).Updates(map[string]interface{}{
		"status":       status,
		"completed_at": completedAt,
	}).Error; err != nil {
		return fmt.Errorf("failed to update deliverable status: %w", err)
	}
	deliverable.Status = status
	deliverable.CompletedAt = completedAt

	action := "updated"
	if status == models.DeliverableApproved {
		action = "approved"
	}
	entityType := "deliverable"
	if err := s.activities.Record(tx, &actor.ID, "deliverable", action, &entityType, &deliverable.ID,
		map[string]interface{}{"newStatus": status}); err != nil {
		return err
	}

	return s.recomputeProgress(tx, project.ID)
}

// recomputeProgress rewrites the project's derived progress from its
// deliverable set. Runs inside the status-change transaction so concurrent
// sibling updates cannot lose writes.
func (s *DeliverableService) recomputeProgress(tx *gorm.DB, projectID string) error {
	var deliverables []models.Deliverable
	if err := tx.Where("project_id = ?", projectID).Find(&deliverables).Error; err != nil {
		return fmt.Errorf("failed to load project deliverables: %w", err)
	}
	if len(deliverables) == 0 {
		return nil
	}

	approved := 0
	for _, d := range deliverables {
		if d.Status == models.DeliverableApproved {
			approved++
		}
	}

	progress := ProgressPercent(approved, len(deliverables))
	if err := tx.Model(&models.Project{}).Where("id = ?", projectID).
		Update("progress", progress).Error; err != nil {
		return fmt.Errorf("failed to update project progress: %w", err)
	}
	return nil
}

// ProgressPercent returns the share of approved deliverables, rounded to
// the nearest whole percent.
func ProgressPercent(approved, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(approved) / float64(total)))
}

// CompletionTimestamp returns the completed_at value for a status: set
// exactly when the status is approved, cleared otherwise.
func CompletionTimestamp(status string, now time.Time) *time.Time {
	if status == models.DeliverableApproved {
		return &now
	}
	return nil
}
