package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/amanullahykhan/voice-chatbot-project/internal/chat"
	"github.com/amanullahykhan/voice-chatbot-project/internal/middleware"
	"github.com/amanullahykhan/voice-chatbot-project/internal/models"
	"github.com/amanullahykhan/voice-chatbot-project/internal/store"
	"github.com/amanullahykhan/voice-chatbot-project/internal/util"

	"github.com/gin-gonic/gin"
)

// How many prior turns are fed back into the prompt as context.
const historyContextLimit = 5

// ChatHandler drives the chat pipeline: load context, generate a
// reply, persist both turns, compose the response.
type ChatHandler struct {
	Messages  *store.MessageStore
	Prefs     *store.PreferenceStore
	Generator *chat.Generator
}

func NewChatHandler(messages *store.MessageStore, prefs *store.PreferenceStore, generator *chat.Generator) *ChatHandler {
	return &ChatHandler{Messages: messages, Prefs: prefs, Generator: generator}
}

type chatReq struct {
	Message        string `json:"message"`
	VoiceStyle     string `json:"voice_style"`
	ConversationID string `json:"conversation_id"`
}

func (h *ChatHandler) Chat(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		util.Error(c, http.StatusBadRequest, "No message provided")
		return
	}

	style := chat.NormalizeStyle(req.VoiceStyle)
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = fmt.Sprintf("conv_%d", time.Now().Unix())
	}

	// context window is read before the new turn is stored, so the
	// prompt does not repeat the message it is answering
	history, err := h.Messages.RecentHistory(userID, conversationID, historyContextLimit)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load history")
		return
	}

	if _, err := h.Messages.Append(userID, conversationID, models.RoleUser, req.Message, style, ""); err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to save message")
		return
	}

	result := h.Generator.Generate(c.Request.Context(), req.Message, history, style)

	if _, err := h.Messages.Append(userID, conversationID, models.RoleAssistant, result.Text, style, result.Emotion); err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to save message")
		return
	}

	prefs, err := h.Prefs.Get(userID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load preferences")
		return
	}

	voice := chat.GetVoiceStyle(style)
	voiceSettings := gin.H{
		"name":           voice.Name,
		"description":    voice.Description,
		"pitch":          voice.Pitch,
		"rate":           voice.Rate,
		"volume":         voice.Volume,
		"pause_duration": voice.PauseDuration,
		"user_rate":      prefs.SpeechRate,
		"user_pitch":     prefs.SpeechPitch,
	}

	util.Success(c, util.Response{
		"text":            result.Text,
		"emotion":         result.Emotion,
		"voice_style":     result.VoiceStyle,
		"voice_name":      result.VoiceName,
		"is_ai_generated": result.AIGenerated,
		"voice_settings":  voiceSettings,
		"conversation_id": conversationID,
		"timestamp":       result.Timestamp.Format(time.RFC3339),
	})
}

func (h *ChatHandler) History(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	conversationID := c.DefaultQuery("conversation_id", "default")
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	msgs, err := h.Messages.FullHistory(userID, conversationID, limit)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load history")
		return
	}

	out := make([]gin.H, len(msgs))
	for i, m := range msgs {
		out[i] = gin.H{
			"role":        m.Role,
			"content":     m.Content,
			"voice_style": m.VoiceStyle,
			"emotion":     m.Emotion,
			"created_at":  m.CreatedAt,
		}
	}

	util.Success(c, util.Response{
		"messages":        out,
		"conversation_id": conversationID,
	})
}

func (h *ChatHandler) Conversations(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	convs, err := h.Messages.ListConversations(userID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load conversations")
		return
	}

	util.Success(c, util.Response{
		"conversations": convs,
	})
}
