package services

import (
	"errors"
	"fmt"

	"github.com/soundfolio/artist-portal/internal/dto"
	"github.com/soundfolio/artist-portal/internal/models"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// List returns the user's projects, newest first, with deliverable counts.
func (s *ProjectService) List(user *models.User, status string) ([]dto.ProjectSummary, error) {
	q := s.db.Where("user_id = ?", user.ID).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var projects []models.Project
	if err := q.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	summaries := make([]dto.ProjectSummary, 0, len(projects))
	for _, project := range projects {
		var deliverables []models.Deliverable
		if err := s.db.Where("project_id = ?", project.ID).Find(&deliverables).Error; err != nil {
			return nil, fmt.Errorf("failed to load deliverables: %w", err)
		}
		completed := 0
		for _, d := range deliverables {
			if d.Status == models.DeliverableApproved {
				completed++
			}
		}
		summaries = append(summaries, dto.ProjectSummary{
			Project:               project,
			TotalDeliverables:     len(deliverables),
			CompletedDeliverables: completed,
		})
	}

	return summaries, nil
}

// Get returns the full project view with deliverables, chat messages and
// attachments. Only the owner or an admin may read it.
func (s *ProjectService) Get(user *models.User, projectID string) (*dto.ProjectDetail, error) {
	var project models.Project
	if err := s.db.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	if project.UserID != user.ID && user.Role != models.RoleAdmin {
		return nil, ErrAccessDenied
	}

	detail := &dto.ProjectDetail{Project: project}

	if err := s.db.Where("project_id = ?", projectID).
		Order("sort_order").Find(&detail.Deliverables).Error; err != nil {
		return nil, fmt.Errorf("failed to load deliverables: %w", err)
	}

	if err := s.db.Table("messages").
		Select(`messages.id, messages.content, messages.attachment_url, messages.created_at,
			messages.author_id, users.name AS author_name, users.avatar_url AS author_avatar,
			users.role AS author_role`).
		Joins("LEFT JOIN users ON users.id = messages.author_id").
		Where("messages.project_id = ?", projectID).
		Order("messages.created_at").
		Scan(&detail.Messages).Error; err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	if err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC").Find(&detail.Attachments).Error; err != nil {
		return nil, fmt.Errorf("failed to load attachments: %w", err)
	}

	return detail, nil
}
