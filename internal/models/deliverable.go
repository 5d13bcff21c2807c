package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	DeliverableNotStarted = "not_started"
	DeliverableInProgress = "in_progress"
	DeliverableReview     = "review"
	DeliverableRevision   = "revision"
	DeliverableApproved   = "approved"
	DeliverableCancelled  = "cancelled"
)

var DeliverableStatuses = []string{
	DeliverableNotStarted,
	DeliverableInProgress,
	DeliverableReview,
	DeliverableRevision,
	DeliverableApproved,
	DeliverableCancelled,
}

type Deliverable struct {
	ID          string         `gorm:"size:64;primaryKey" json:"id"`
	ProjectID   string         `gorm:"size:64;not null;index" json:"projectId"`
	Title       string         `gorm:"not null;size:255" json:"title"`
	Description *string        `gorm:"type:text" json:"description"`
	Status      string         `gorm:"size:20;not null;default:'not_started'" json:"status"`
	Priority    string         `gorm:"size:10;default:'medium'" json:"priority"`
	DueDate     *time.Time     `json:"dueDate"`
	CompletedAt *time.Time     `json:"completedAt"`
	AssignedTo  *string        `gorm:"size:64" json:"assignedTo"`
	Meta        datatypes.JSON `gorm:"type:jsonb" json:"meta"`
	SortOrder   int            `gorm:"default:0" json:"sortOrder"`
	CreatedAt   time.Time      `json:"createdAt"`
	Project     Project        `gorm:"foreignKey:ProjectID" json:"-"`
}

type DeliverableComment struct {
	ID            string    `gorm:"size:64;primaryKey" json:"id"`
	DeliverableID string    `gorm:"size:64;not null;index" json:"deliverableId"`
	AuthorID      string    `gorm:"size:64;not null" json:"authorId"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	IsInternal    bool      `gorm:"default:false" json:"isInternal"`
	CreatedAt     time.Time `json:"createdAt"`
	Author        User      `gorm:"foreignKey:AuthorID" json:"-"`
}

type Attachment struct {
	ID            string    `gorm:"size:64;primaryKey" json:"id"`
	DeliverableID *string   `gorm:"size:64;index" json:"deliverableId"`
	ProjectID     *string   `gorm:"size:64;index" json:"projectId"`
	Name          string    `gorm:"not null;size:255" json:"name"`
	URL           string    `gorm:"not null;size:500" json:"url"`
	Type          *string   `gorm:"size:100" json:"type"`
	Size          *int      `json:"size"`
	UploadedBy    *string   `gorm:"size:64" json:"uploadedBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

func ValidDeliverableStatus(status string) bool {
	for _, s := range DeliverableStatuses {
		if s == status {
			return true
		}
	}
	return false
}
