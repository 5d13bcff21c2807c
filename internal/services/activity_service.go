package services

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/soundfolio/artist-portal/internal/dto"
	"github.com/soundfolio/artist-portal/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityService appends immutable audit rows. Rows are never updated or
// deleted.
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Record appends an activity row on the given handle. Pass a transaction
// handle to make the row part of the surrounding atomic unit.
func (s *ActivityService) Record(tx *gorm.DB, actorID *string, typ, action string, entityType, entityID *string, meta map[string]interface{}) error {
	row := models.Activity{
		ID:         uuid.New().String(),
		UserID:     actorID,
		Type:       typ,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if meta != nil {
		b, err := json.Marshal(meta)
		if err != nil {
			return fmt.Errorf("failed to encode activity meta: %w", err)
		}
		row.Meta = datatypes.JSON(b)
	}
	if err := tx.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// RecordBestEffort logs outside any transaction. The audit trail is
// telemetry here: a failure is logged and swallowed so the parent mutation
// still counts as succeeded.
func (s *ActivityService) RecordBestEffort(actorID *string, typ, action string, entityType, entityID *string, meta map[string]interface{}) {
	if err := s.Record(s.db, actorID, typ, action, entityType, entityID, meta); err != nil {
		slog.Error("activity logging failed", "type", typ, "action", action, "error", err)
	}
}

// List returns recent activities joined with their actor. Admins see every
// row; artists only their own.
func (s *ActivityService) List(user *models.User, limit int) ([]dto.ActivityRow, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	q := s.db.Table("activities").
		Select(`activities.id, activities.type, activities.action, activities.entity_type,
			activities.entity_id, activities.meta, activities.created_at, activities.user_id,
			users.name AS user_name, users.avatar_url AS user_avatar, users.role AS user_role`).
		Joins("LEFT JOIN users ON users.id = activities.user_id").
		Order("activities.created_at DESC").
		Limit(limit)

	if user.Role != models.RoleAdmin {
		q = q.Where("activities.user_id = ?", user.ID)
	}

	var rows []dto.ActivityRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return rows, nil
}
