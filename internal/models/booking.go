package models

import "time"

const (
	BookingScheduled = "scheduled"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
	BookingNoShow    = "no_show"
)

var BookingStatuses = []string{BookingScheduled, BookingCompleted, BookingCancelled, BookingNoShow}

var SessionTypes = []string{"strategy", "content_planning", "branding_workshop", "review", "onboarding"}

type Booking struct {
	ID          string    `gorm:"size:64;primaryKey" json:"id"`
	UserID      string    `gorm:"size:64;not null;index" json:"userId"`
	SessionType string    `gorm:"size:30;not null" json:"sessionType"`
	Title       string    `gorm:"not null;size:255" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	StartAt     time.Time `gorm:"not null" json:"startAt"`
	EndAt       time.Time `gorm:"not null" json:"endAt"`
	Status      string    `gorm:"size:20;not null;default:'scheduled'" json:"status"`
	MeetingURL  *string   `gorm:"size:500" json:"meetingUrl"`
	Notes       *string   `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
}
