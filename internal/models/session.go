package models

import "time"

// Session stores opaque login tokens (for logout, invalidation).
// A user may hold any number of concurrent sessions.
type Session struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	Token     string    `gorm:"size:128;uniqueIndex;not null"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index;not null"`

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
