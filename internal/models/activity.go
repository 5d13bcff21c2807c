package models

import (
	"time"

	"gorm.io/datatypes"
)

// Activity is an immutable audit row. Rows are appended alongside the
// primary mutation and never updated or deleted.
type Activity struct {
	ID         string         `gorm:"size:64;primaryKey" json:"id"`
	UserID     *string        `gorm:"size:64;index" json:"userId"`
	Type       string         `gorm:"size:30;not null" json:"type"`
	Action     string         `gorm:"size:30;not null" json:"action"`
	EntityType *string        `gorm:"size:30" json:"entityType"`
	EntityID   *string        `gorm:"size:64" json:"entityId"`
	Meta       datatypes.JSON `gorm:"type:jsonb" json:"meta"`
	CreatedAt  time.Time      `gorm:"index" json:"createdAt"`
}
