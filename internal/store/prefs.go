package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/amanullahykhan/voice-chatbot-project/internal/models"

	"gorm.io/gorm"
)

// PreferenceStore reads and partially updates per-user settings.
type PreferenceStore struct {
	DB *gorm.DB
}

func NewPreferenceStore(db *gorm.DB) *PreferenceStore {
	return &PreferenceStore{DB: db}
}

// Fields accepted by Update; everything else in a partial update is
// silently dropped, matching the original API contract.
var allowedPrefFields = map[string]string{
	"voice_style":        "voice_style",
	"theme":              "theme",
	"auto_play_voice":    "auto_play_voice",
	"speech_rate":        "speech_rate",
	"speech_pitch":       "speech_pitch",
	"conversation_style": "conversation_style",
	"use_fillers":        "use_fillers",
	"use_pauses":         "use_pauses",
}

// Get returns the user's preference row. Registration creates the row,
// so a miss should not happen; the defaults bundle covers it anyway.
func (s *PreferenceStore) Get(userID uint) (models.Preference, error) {
	var prefs models.Preference
	err := s.DB.Where("user_id = ?", userID).First(&prefs).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultPreference(userID), nil
		}
		return prefs, fmt.Errorf("query preferences: %w", err)
	}
	return prefs, nil
}

// Update applies the allow-listed subset of partial to the user's
// row. Returns false without touching the row when no recognized
// field is present.
func (s *PreferenceStore) Update(userID uint, partial map[string]interface{}) (bool, error) {
	updates := map[string]interface{}{}
	for key, value := range partial {
		if col, ok := allowedPrefFields[key]; ok {
			updates[col] = value
		}
	}
	if len(updates) == 0 {
		return false, nil
	}
	updates["updated_at"] = time.Now()

	res := s.DB.Model(&models.Preference{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return false, fmt.Errorf("update preferences: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
