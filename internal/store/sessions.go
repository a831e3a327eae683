package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/amanullahykhan/voice-chatbot-project/internal/models"
	"github.com/amanullahykhan/voice-chatbot-project/internal/util"

	"gorm.io/gorm"
)

// SessionStore issues and resolves opaque bearer tokens. Tokens have
// a fixed validity window set at issuance; there is no sliding expiry.
type SessionStore struct {
	DB  *gorm.DB
	TTL time.Duration
}

func NewSessionStore(db *gorm.DB, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &SessionStore{DB: db, TTL: ttl}
}

// Issue creates a new session for the user and returns its token.
// A user may hold any number of live tokens at once.
func (s *SessionStore) Issue(userID uint) (string, error) {
	token, err := util.NewSessionToken()
	if err != nil {
		return "", err
	}

	session := models.Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.TTL),
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

// Resolve returns the owning user id for a live token.
func (s *SessionStore) Resolve(token string) (uint, error) {
	if token == "" {
		return 0, ErrInvalidToken
	}

	var session models.Session
	err := s.DB.Where("token = ? AND expires_at > ?", token, time.Now()).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrInvalidToken
		}
		return 0, fmt.Errorf("query session: %w", err)
	}
	return session.UserID, nil
}

// Revoke deletes the session row for token. Revoking an unknown or
// already-revoked token is not an error.
func (s *SessionStore) Revoke(token string) error {
	if token == "" {
		return nil
	}
	if err := s.DB.Where("token = ?", token).Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PurgeExpired drops expired rows. Expired sessions are already
// invisible to Resolve, this just keeps the table from growing.
func (s *SessionStore) PurgeExpired() error {
	if err := s.DB.Where("expires_at <= ?", time.Now()).Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("purge sessions: %w", err)
	}
	return nil
}
