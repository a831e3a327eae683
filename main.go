package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/amanullahykhan/voice-chatbot-project/internal/chat"
	"github.com/amanullahykhan/voice-chatbot-project/internal/config"
	"github.com/amanullahykhan/voice-chatbot-project/internal/database"
	"github.com/amanullahykhan/voice-chatbot-project/internal/logger"
	"github.com/amanullahykhan/voice-chatbot-project/internal/router"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog := logger.Init(cfg.Log)

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		zlog.Fatal().Err(err).Msg("init database")
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		zlog.Fatal().Err(err).Msg("migrate database")
	}

	// build the text-generation provider; a missing API key just means
	// fallback-only mode
	provider, err := chat.NewProvider(context.Background(), cfg.AI)
	if err != nil {
		zlog.Fatal().Err(err).Msg("init ai provider")
	}
	if provider == nil {
		zlog.Warn().Msg("no AI API key configured, using fallback responses")
	} else {
		zlog.Info().Str("provider", provider.Name()).Str("model", cfg.AI.Model).Msg("AI provider ready")
	}

	generator := chat.NewGenerator(provider,
		time.Duration(cfg.AI.TimeoutSeconds)*time.Second, zlog)

	r := router.Setup(cfg, db, generator, zlog)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	zlog.Info().Str("addr", addr).Msg("server listening")
	if err := r.Run(addr); err != nil {
		zlog.Fatal().Err(err).Msg("server exited")
	}
}
