package models

import "time"

// Message is a project chat entry. Messages are polled by the client, not
// pushed.
type Message struct {
	ID            string     `gorm:"size:64;primaryKey" json:"id"`
	ProjectID     string     `gorm:"size:64;not null;index" json:"projectId"`
	AuthorID      string     `gorm:"size:64;not null" json:"authorId"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	AttachmentURL *string    `gorm:"size:500" json:"attachmentUrl"`
	ReadAt        *time.Time `json:"readAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	Author        User       `gorm:"foreignKey:AuthorID" json:"-"`
}

var NotificationTypes = []string{"deliverable", "message", "booking", "project", "system"}

type Notification struct {
	ID        string     `gorm:"size:64;primaryKey" json:"id"`
	UserID    string     `gorm:"size:64;not null;index" json:"userId"`
	Type      string     `gorm:"size:20;not null" json:"type"`
	Title     string     `gorm:"not null;size:255" json:"title"`
	Content   *string    `gorm:"type:text" json:"content"`
	LinkURL   *string    `gorm:"size:500" json:"linkUrl"`
	ReadAt    *time.Time `json:"readAt"`
	CreatedAt time.Time  `json:"createdAt"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}
