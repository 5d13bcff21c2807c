package models

import (
	"time"

	"gorm.io/datatypes"
)

var MetricTypes = []string{"content_cadence", "campaign_progress", "completion_rate", "engagement"}

type Metric struct {
	ID        string         `gorm:"size:64;primaryKey" json:"id"`
	UserID    string         `gorm:"size:64;not null;index" json:"userId"`
	Type      string         `gorm:"size:30;not null" json:"type"`
	Date      time.Time      `gorm:"not null;index" json:"date"`
	Value     float64        `gorm:"not null" json:"value"`
	Meta      datatypes.JSON `gorm:"type:jsonb" json:"meta"`
	CreatedAt time.Time      `json:"createdAt"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
}

type Goal struct {
	ID        string     `gorm:"size:64;primaryKey" json:"id"`
	UserID    string     `gorm:"size:64;not null;index" json:"userId"`
	Title     string     `gorm:"not null;size:255" json:"title"`
	Type      string     `gorm:"size:30;not null" json:"type"`
	Target    int        `gorm:"not null" json:"target"`
	Current   int        `gorm:"default:0" json:"current"`
	Period    string     `gorm:"size:20;not null" json:"period"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	CreatedAt time.Time  `json:"createdAt"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}
