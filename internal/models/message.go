package models

import "time"

// Message roles. The role column is free text in the schema but the
// application only ever writes these two values.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat turn. Append-only: the application never
// updates or deletes rows. History ordering is created_at then ID, so
// turns inserted within the same timestamp tick keep insertion order.
type Message struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"index:idx_user_messages;not null"`
	ConversationID string    `gorm:"size:64;index:idx_conversation;not null"`
	Role           string    `gorm:"size:16;not null"`
	Content        string    `gorm:"type:text;not null"`
	VoiceStyle     string    `gorm:"size:32;default:natural"`
	Emotion        string    `gorm:"size:32;default:neutral"`
	CreatedAt      time.Time `gorm:"index:idx_user_messages"`
}
