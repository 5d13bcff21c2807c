package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/soundfolio/artist-portal/internal/models"
	"gorm.io/gorm"
)

// SessionCookieName is the cookie carrying the raw session token.
const SessionCookieName = "artist-portal-session"

// SessionService persists opaque session tokens. Tokens are stored hashed;
// the raw value only ever lives in the client cookie.
type SessionService struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewSessionService(db *gorm.DB, ttl time.Duration) *SessionService {
	return &SessionService{db: db, ttl: ttl}
}

// Create starts a session for the user and returns the raw token for the
// cookie. Multiple concurrent sessions per user are allowed.
func (s *SessionService) Create(userID string) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	session := models.Session{
		ID:        uuid.New().String(),
		TokenHash: hashToken(rawToken),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return rawToken, nil
}

// Resolve looks up a raw token. Expired sessions count as absent and are
// purged on the spot; there is no background sweep.
func (s *SessionService) Resolve(token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	var session models.Session
	err := s.db.Where("token_hash = ?", hashToken(token)).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if session.Expired(time.Now()) {
		if err := s.db.Delete(&session).Error; err != nil {
			return nil, fmt.Errorf("failed to purge expired session: %w", err)
		}
		return nil, ErrSessionNotFound
	}

	return &session, nil
}

// Destroy deletes the session for a raw token. Unknown tokens are a no-op.
func (s *SessionService) Destroy(token string) error {
	if token == "" {
		return nil
	}
	return s.db.Where("token_hash = ?", hashToken(token)).Delete(&models.Session{}).Error
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
