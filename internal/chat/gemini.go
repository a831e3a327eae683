package chat

import (
	"context"
	"fmt"

	"github.com/amanullahykhan/voice-chatbot-project/internal/config"

	"google.golang.org/genai"
)

// Generation parameters shared by both backends, tuned for short
// conversational replies.
const (
	genTemperature     = 0.9
	genTopP            = 0.95
	genTopK            = 40
	genMaxOutputTokens = 200
)

type geminiProvider struct {
	client *genai.Client
	model  string
}

func newGeminiProvider(ctx context.Context, cfg config.AIConfig) (*geminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) Name() string { return "gemini" }

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](genTemperature),
			TopP:            genai.Ptr[float32](genTopP),
			TopK:            genai.Ptr[float32](genTopK),
			MaxOutputTokens: genMaxOutputTokens,
		})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini generate: empty response")
	}
	return text, nil
}
