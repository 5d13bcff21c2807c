package dto

import "github.com/soundfolio/artist-portal/internal/models"

type LoginRequest struct {
	UserID   string `json:"userId"`
	Passcode string `json:"passcode"`
}

// UserResponse is the public projection of a user. Session internals never
// leave the server.
type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
	Role      string  `json:"role"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
	}
}

type LoginResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

type UsersResponse struct {
	Success bool           `json:"success"`
	Users   []UserResponse `json:"users"`
}

// MeSubscription is the artist's subscription with its plan embedded.
type MeSubscription struct {
	models.Subscription
	Plan *models.Plan `json:"plan"`
}

type MeUser struct {
	models.User
	Profile      *models.ArtistProfile `json:"profile"`
	Subscription *MeSubscription       `json:"subscription"`
}

// MeResponse carries a null user when nobody is logged in; that is the
// contract, not an error.
type MeResponse struct {
	Success bool    `json:"success"`
	User    *MeUser `json:"user"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
