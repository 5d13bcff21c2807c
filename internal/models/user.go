package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoleArtist = "artist"
	RoleAdmin  = "admin"
)

type User struct {
	ID        string    `gorm:"size:64;primaryKey" json:"id"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	AvatarURL *string   `gorm:"size:500" json:"avatarUrl"`
	Role      string    `gorm:"size:20;not null;default:'artist'" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ArtistProfile holds the extended artist-facing info shown on the dashboard.
type ArtistProfile struct {
	ID               string                                `gorm:"size:64;primaryKey" json:"id"`
	UserID           string                                `gorm:"size:64;not null;index" json:"userId"`
	Genre            *string                               `gorm:"size:100" json:"genre"`
	Bio              *string                               `gorm:"type:text" json:"bio"`
	Goals            datatypes.JSONSlice[string]           `gorm:"type:jsonb" json:"goals"`
	SocialLinks      datatypes.JSONType[map[string]string] `gorm:"type:jsonb" json:"socialLinks"`
	MonthlyListeners *int                                  `json:"monthlyListeners"`
	Followers        *int                                  `json:"followers"`
	CreatedAt        time.Time                             `json:"createdAt"`
	User             User                                  `gorm:"foreignKey:UserID" json:"-"`
}
