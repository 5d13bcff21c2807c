package services

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/soundfolio/artist-portal/internal/config"
	"github.com/soundfolio/artist-portal/internal/dto"
	"github.com/soundfolio/artist-portal/internal/models"
	"gorm.io/gorm"
)

type AuthService struct {
	db       *gorm.DB
	sessions *SessionService
	cfg      *config.Config
}

func NewAuthService(db *gorm.DB, sessions *SessionService, cfg *config.Config) *AuthService {
	return &AuthService{db: db, sessions: sessions, cfg: cfg}
}

// Login validates the optional demo passcode, looks up the user and opens a
// session. The returned token goes into the session cookie.
func (s *AuthService) Login(userID, passcode string) (*models.User, string, error) {
	if passcode != "" {
		if subtle.ConstantTimeCompare([]byte(passcode), []byte(s.cfg.DemoPasscode)) != 1 {
			return nil, "", ErrInvalidPasscode
		}
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", fmt.Errorf("failed to load user: %w", err)
	}

	token, err := s.sessions.Create(user.ID)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// CurrentUser resolves the session cookie value to a user. Absence (no
// token, expired session, deleted user) is reported as (nil, nil), not as
// an error.
func (s *AuthService) CurrentUser(token string) (*models.User, error) {
	session, err := s.sessions.Resolve(token)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", session.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return &user, nil
}

// Logout destroys the session behind the token. Always succeeds for the
// caller; a missing session is not an error.
func (s *AuthService) Logout(token string) error {
	return s.sessions.Destroy(token)
}

// ListUsers returns all users for the demo account picker.
func (s *AuthService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("role, name").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Me builds the current-user payload. Artists get their profile and
// subscription (with plan) embedded.
func (s *AuthService) Me(user *models.User) (*dto.MeUser, error) {
	me := &dto.MeUser{User: *user}
	if user.Role != models.RoleArtist {
		return me, nil
	}

	var profile models.ArtistProfile
	err := s.db.Where("user_id = ?", user.ID).First(&profile).Error
	if err == nil {
		me.Profile = &profile
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load artist profile: %w", err)
	}

	var sub models.Subscription
	err = s.db.Where("user_id = ?", user.ID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return me, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}

	meSub := &dto.MeSubscription{Subscription: sub}
	var plan models.Plan
	if err := s.db.First(&plan, "id = ?", sub.PlanID).Error; err == nil {
		meSub.Plan = &plan
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	me.Subscription = meSub

	return me, nil
}
