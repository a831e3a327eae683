package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/amanullahykhan/voice-chatbot-project/internal/config"
)

// Provider is the text-generation backend: prompt in, raw text out.
// Implementations wrap one SDK each and are chosen once at startup,
// never per call.
type Provider interface {
	// Name identifies the backend in logs and /status.
	Name() string
	// Generate produces raw reply text for the assembled prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewProvider builds the configured provider. A missing API key
// returns (nil, nil): the generator then runs fallback-only, which is
// a degraded mode, not a startup failure.
func NewProvider(ctx context.Context, cfg config.AIConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}
	switch strings.ToLower(cfg.Provider) {
	case "gemini", "":
		return newGeminiProvider(ctx, cfg)
	case "openai":
		return newOpenAIProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
	}
}
