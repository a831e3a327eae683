package models

import "time"

// Preference holds per-user voice and response settings, one row per
// user, created together with the user at registration.
type Preference struct {
	ID                uint    `gorm:"primaryKey"`
	UserID            uint    `gorm:"uniqueIndex;not null"`
	VoiceStyle        string  `gorm:"size:32;default:natural"`
	Theme             string  `gorm:"size:32;default:light"`
	AutoPlayVoice     bool    `gorm:"default:true"`
	SpeechRate        float64 `gorm:"default:1.0"`
	SpeechPitch       float64 `gorm:"default:1.0"`
	ConversationStyle string  `gorm:"size:32;default:casual"`
	UseFillers        bool    `gorm:"default:true"`
	UsePauses         bool    `gorm:"default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}

// DefaultPreference returns the bundle used when no row exists yet.
func DefaultPreference(userID uint) Preference {
	return Preference{
		UserID:            userID,
		VoiceStyle:        "natural",
		Theme:             "light",
		AutoPlayVoice:     true,
		SpeechRate:        1.0,
		SpeechPitch:       1.0,
		ConversationStyle: "casual",
		UseFillers:        true,
		UsePauses:         true,
	}
}
