package handler

import (
	"github.com/amanullahykhan/voice-chatbot-project/internal/chat"
	"github.com/amanullahykhan/voice-chatbot-project/internal/util"

	"github.com/gin-gonic/gin"
)

// Voices serves the fixed style catalog; no auth required.
func Voices(c *gin.Context) {
	util.Success(c, util.Response{
		"voices": chat.VoiceStyles,
	})
}

// Status reports service health and feature availability.
func Status(generator *chat.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		aiState := "disconnected"
		if generator.AIAvailable() {
			aiState = "connected"
		}
		util.Success(c, util.Response{
			"server": "running",
			"ai":     aiState,
			"features": gin.H{
				"natural_voice":           true,
				"human_like_conversation": true,
				"emotion_detection":       true,
				"voice_input":             true,
				"ai_responses":            generator.AIAvailable(),
			},
		})
	}
}

// APIKeyCheck tells the authenticated client whether a generation
// backend is configured, without ever exposing the key itself.
func APIKeyCheck(generator *chat.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		util.Success(c, util.Response{
			"has_key": generator.AIAvailable(),
		})
	}
}
