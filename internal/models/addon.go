package models

import (
	"time"

	"gorm.io/datatypes"
)

var AddonCategories = []string{"social", "spotify", "branding", "pr", "ads", "content", "strategy"}

// Addon is a one-time purchasable service. Purchasing one provisions a
// Project plus one Deliverable per scope line item.
type Addon struct {
	ID           string                      `gorm:"size:64;primaryKey" json:"id"`
	Name         string                      `gorm:"not null;size:255" json:"name"`
	Slug         string                      `gorm:"not null;size:100;uniqueIndex" json:"slug"`
	Category     string                      `gorm:"size:30;not null" json:"category"`
	Description  *string                     `gorm:"type:text" json:"description"`
	Price        float64                     `gorm:"not null" json:"price"`
	DeliveryDays int                         `gorm:"not null" json:"deliveryDays"`
	Scope        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"scope"`
	Requirements datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"requirements"`
	Active       bool                        `gorm:"default:true" json:"active"`
	SortOrder    int                         `gorm:"default:0" json:"sortOrder"`
	CreatedAt    time.Time                   `json:"createdAt"`
}

const (
	PurchasePending   = "pending"
	PurchaseCompleted = "completed"
	PurchaseRefunded  = "refunded"
)

type Purchase struct {
	ID        string    `gorm:"size:64;primaryKey" json:"id"`
	UserID    string    `gorm:"size:64;not null;index" json:"userId"`
	AddonID   string    `gorm:"size:64;not null" json:"addonId"`
	ProjectID *string   `gorm:"size:64" json:"projectId"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Status    string    `gorm:"size:20;not null;default:'completed'" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Addon     Addon     `gorm:"foreignKey:AddonID" json:"-"`
}
