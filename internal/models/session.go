package models

import "time"

// Session is the server-held proof of authentication. The client holds the
// raw opaque token in a cookie; only its sha256 hex digest is stored.
type Session struct {
	ID        string    `gorm:"size:64;primaryKey" json:"id"`
	TokenHash string    `gorm:"uniqueIndex;not null;size:64" json:"-"`
	UserID    string    `gorm:"size:64;not null;index" json:"userId"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
