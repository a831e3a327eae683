package store

import (
	"fmt"

	"github.com/amanullahykhan/voice-chatbot-project/internal/models"

	"gorm.io/gorm"
)

// MessageStore persists chat turns. Rows are append-only.
type MessageStore struct {
	DB *gorm.DB
}

func NewMessageStore(db *gorm.DB) *MessageStore {
	return &MessageStore{DB: db}
}

// HistoryEntry is the shape handed to the response generator: just
// enough context to render prior turns into a prompt.
type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Emotion string `json:"emotion"`
}

// Conversation is one row of the conversation listing.
type Conversation struct {
	ConversationID string `json:"conversation_id"`
	LastActivity   string `json:"last_activity"`
}

// Append inserts one chat turn and returns its id. Role is stored as
// given; callers write models.RoleUser / models.RoleAssistant.
func (s *MessageStore) Append(userID uint, conversationID, role, content, voiceStyle, emotion string) (uint, error) {
	if voiceStyle == "" {
		voiceStyle = "natural"
	}
	if emotion == "" {
		emotion = "neutral"
	}
	msg := models.Message{
		UserID:         userID,
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		VoiceStyle:     voiceStyle,
		Emotion:        emotion,
	}
	if err := s.DB.Create(&msg).Error; err != nil {
		return 0, fmt.Errorf("create message: %w", err)
	}
	return msg.ID, nil
}

// RecentHistory returns the newest limit turns of a conversation in
// chronological order: fetch newest-first, then reverse, so the
// caller always sees time-ascending context. ID breaks created_at
// ties, SQLite timestamps are coarse enough for two turns of the same
// request to collide.
func (s *MessageStore) RecentHistory(userID uint, conversationID string, limit int) ([]HistoryEntry, error) {
	var msgs []models.Message
	err := s.DB.Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	entries := make([]HistoryEntry, len(msgs))
	for i, m := range msgs {
		entries[len(msgs)-1-i] = HistoryEntry{
			Role:    m.Role,
			Content: m.Content,
			Emotion: m.Emotion,
		}
	}
	return entries, nil
}

// FullHistory returns up to limit turns of a conversation ascending,
// with style and timestamp included. Default limit is 50.
func (s *MessageStore) FullHistory(userID uint, conversationID string, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = 50
	}
	var msgs []models.Message
	err := s.DB.Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Order("created_at ASC").Order("id ASC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	return msgs, nil
}

// ListConversations returns the user's distinct conversation ids with
// their latest activity, most recent first, capped at 20.
func (s *MessageStore) ListConversations(userID uint) ([]Conversation, error) {
	var convs []Conversation
	err := s.DB.Model(&models.Message{}).
		Select("conversation_id, MAX(created_at) AS last_activity").
		Where("user_id = ?", userID).
		Group("conversation_id").
		Order("last_activity DESC").
		Limit(20).
		Scan(&convs).Error
	if err != nil {
		return nil, fmt.Errorf("query conversations: %w", err)
	}
	return convs, nil
}
