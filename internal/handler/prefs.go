package handler

import (
	"net/http"

	"github.com/amanullahykhan/voice-chatbot-project/internal/middleware"
	"github.com/amanullahykhan/voice-chatbot-project/internal/store"
	"github.com/amanullahykhan/voice-chatbot-project/internal/util"

	"github.com/gin-gonic/gin"
)

// PrefHandler serves the preference bundle.
type PrefHandler struct {
	Prefs *store.PreferenceStore
}

func NewPrefHandler(prefs *store.PreferenceStore) *PrefHandler {
	return &PrefHandler{Prefs: prefs}
}

func (h *PrefHandler) Get(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	prefs, err := h.Prefs.Get(userID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load preferences")
		return
	}

	util.Success(c, util.Response{
		"preferences": gin.H{
			"voice_style":        prefs.VoiceStyle,
			"theme":              prefs.Theme,
			"auto_play_voice":    prefs.AutoPlayVoice,
			"speech_rate":        prefs.SpeechRate,
			"speech_pitch":       prefs.SpeechPitch,
			"conversation_style": prefs.ConversationStyle,
			"use_fillers":        prefs.UseFillers,
			"use_pauses":         prefs.UsePauses,
		},
	})
}

// Update applies a partial preference update. Unknown fields are
// ignored; a body with no recognized field at all is reported as a
// failure.
func (h *PrefHandler) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var partial map[string]interface{}
	if err := c.ShouldBindJSON(&partial); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.Prefs.Update(userID, partial)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to update preferences")
		return
	}
	if !updated {
		util.Error(c, http.StatusBadRequest, "Failed to update preferences")
		return
	}

	util.Success(c, util.Response{
		"message": "Preferences updated",
	})
}
