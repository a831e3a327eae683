package router

import (
	"time"

	"github.com/amanullahykhan/voice-chatbot-project/internal/chat"
	"github.com/amanullahykhan/voice-chatbot-project/internal/config"
	"github.com/amanullahykhan/voice-chatbot-project/internal/handler"
	"github.com/amanullahykhan/voice-chatbot-project/internal/middleware"
	"github.com/amanullahykhan/voice-chatbot-project/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Setup wires stores, generator and handlers into the gin engine.
func Setup(cfg *config.Config, db *gorm.DB, generator *chat.Generator, log zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLog(log), gin.Recovery())

	users := store.NewUserStore(db)
	sessions := store.NewSessionStore(db, time.Duration(cfg.Session.TokenTTLDays)*24*time.Hour)
	messages := store.NewMessageStore(db)
	prefs := store.NewPreferenceStore(db)

	authHandler := handler.NewAuthHandler(users, sessions)
	chatHandler := handler.NewChatHandler(messages, prefs, generator)
	prefHandler := handler.NewPrefHandler(prefs)
	exportHandler := handler.NewExportHandler(messages)

	// public endpoints
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/voices", handler.Voices)
	r.GET("/status", handler.Status(generator))

	// everything below requires a live session token
	protected := r.Group("")
	protected.Use(middleware.Auth(sessions))

	protected.POST("/logout", authHandler.Logout)
	protected.GET("/profile", authHandler.Profile)
	protected.POST("/chat", chatHandler.Chat)
	protected.GET("/history", chatHandler.History)
	protected.GET("/conversations", chatHandler.Conversations)
	protected.GET("/preferences", prefHandler.Get)
	protected.PUT("/preferences", prefHandler.Update)
	protected.GET("/api/key", handler.APIKeyCheck(generator))
	protected.GET("/export/history.csv", exportHandler.ExportCSV)
	protected.GET("/export/history.xlsx", exportHandler.ExportXLSX)

	return r
}
