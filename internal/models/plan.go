package models

import (
	"time"

	"gorm.io/datatypes"
)

// PlanDeliverable is one recurring deliverable bundled into a plan.
type PlanDeliverable struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Plan struct {
	ID               string                               `gorm:"size:64;primaryKey" json:"id"`
	Name             string                               `gorm:"not null;size:255" json:"name"`
	Slug             string                               `gorm:"not null;size:100;uniqueIndex" json:"slug"`
	Description      *string                              `gorm:"type:text" json:"description"`
	PriceMonthly     float64                              `gorm:"not null" json:"priceMonthly"`
	PriceYearly      *float64                             `json:"priceYearly"`
	Features         datatypes.JSONSlice[string]          `gorm:"type:jsonb" json:"features"`
	Deliverables     datatypes.JSONSlice[PlanDeliverable] `gorm:"type:jsonb" json:"deliverables"`
	SessionsPerMonth int                                  `gorm:"default:0" json:"sessionsPerMonth"`
	ResponseSLA      *string                              `gorm:"column:response_sla;size:100" json:"responseSla"`
	IsPopular        bool                                 `gorm:"default:false" json:"isPopular"`
	Active           bool                                 `gorm:"default:true" json:"active"`
	SortOrder        int                                  `gorm:"default:0" json:"sortOrder"`
	CreatedAt        time.Time                            `json:"createdAt"`
}

const (
	SubscriptionActive    = "active"
	SubscriptionCancelled = "cancelled"
	SubscriptionPastDue   = "past_due"
	SubscriptionTrialing  = "trialing"
)

type Subscription struct {
	ID                 string     `gorm:"size:64;primaryKey" json:"id"`
	UserID             string     `gorm:"size:64;not null;index" json:"userId"`
	PlanID             string     `gorm:"size:64;not null" json:"planId"`
	Status             string     `gorm:"size:20;not null;default:'active'" json:"status"`
	CurrentPeriodStart *time.Time `json:"currentPeriodStart"`
	CurrentPeriodEnd   *time.Time `json:"currentPeriodEnd"`
	CreatedAt          time.Time  `json:"createdAt"`
	User               User       `gorm:"foreignKey:UserID" json:"-"`
	Plan               Plan       `gorm:"foreignKey:PlanID" json:"-"`
}
