package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ProjectActive    = "active"
	ProjectCompleted = "completed"
	ProjectOnHold    = "on_hold"
	ProjectCancelled = "cancelled"
)

const (
	ProjectTypeSubscription = "subscription"
	ProjectTypeAddon        = "addon"
	ProjectTypeCustom       = "custom"
)

// Project groups deliverables for one user. Progress is derived from the
// deliverable set (share of approved items); it is never set directly.
type Project struct {
	ID          string         `gorm:"size:64;primaryKey" json:"id"`
	UserID      string         `gorm:"size:64;not null;index" json:"userId"`
	Title       string         `gorm:"not null;size:255" json:"title"`
	Description *string        `gorm:"type:text" json:"description"`
	Type        string         `gorm:"size:20;not null" json:"type"`
	Status      string         `gorm:"size:20;not null;default:'active'" json:"status"`
	Progress    int            `gorm:"default:0" json:"progress"`
	StartDate   *time.Time     `json:"startDate"`
	DueDate     *time.Time     `json:"dueDate"`
	CompletedAt *time.Time     `json:"completedAt"`
	Meta        datatypes.JSON `gorm:"type:jsonb" json:"meta"`
	CreatedAt   time.Time      `json:"createdAt"`
	User        User           `gorm:"foreignKey:UserID" json:"-"`
}
