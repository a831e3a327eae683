package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amanullahykhan/voice-chatbot-project/internal/models"
	"github.com/amanullahykhan/voice-chatbot-project/internal/util"

	"gorm.io/gorm"
)

// UserStore owns user rows and password verification.
type UserStore struct {
	DB *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{DB: db}
}

// Create inserts a new user together with its default preference row
// in one transaction, so a user without preferences is never
// observable. Uniqueness is enforced by the unique indexes on
// username and email; a constraint violation surfaces as
// ErrDuplicateIdentity rather than a pre-check, which would race
// under concurrent registrations.
func (s *UserStore) Create(username, email, password string) (*models.User, error) {
	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
		IsActive:     true,
	}
	if email != "" {
		user.Email = &email
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateIdentity
			}
			return fmt.Errorf("create user: %w", err)
		}
		prefs := models.DefaultPreference(user.ID)
		if err := tx.Create(&prefs).Error; err != nil {
			return fmt.Errorf("create preferences: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyCredentials checks username/password against active users and
// stamps last_login on success. Unknown username and wrong password
// return the same error.
func (s *UserStore) VerifyCredentials(username, password string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("username = ? AND is_active = ?", username, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("query user: %w", err)
	}

	if !util.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.DB.Model(&user).Update("last_login_at", now).Error; err != nil {
		return nil, fmt.Errorf("update last login: %w", err)
	}
	return &user, nil
}

// Get returns a user by id.
func (s *UserStore) Get(userID uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &user, nil
}

// SQLite reports unique-index violations as "UNIQUE constraint
// failed"; gorm has no portable sentinel for it with this driver.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
