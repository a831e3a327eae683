package models

import "time"

// User represents a registered chat user.
type User struct {
	ID           uint    `gorm:"primaryKey"`
	Username     string  `gorm:"size:64;uniqueIndex;not null"`
	Email        *string `gorm:"size:128;uniqueIndex"`
	PasswordHash string  `gorm:"size:255;not null"` // "salt$digest", see util.HashPassword
	CreatedAt    time.Time
	LastLoginAt  *time.Time
	IsActive     bool `gorm:"default:true;not null"`
}
