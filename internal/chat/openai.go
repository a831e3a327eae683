package chat

import (
	"context"
	"fmt"

	"github.com/amanullahykhan/voice-chatbot-project/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

type openAIProvider struct {
	client *openai.Client
	model  string
}

func newOpenAIProvider(cfg config.AIConfig) *openAIProvider {
	model := cfg.Model
	if model == "" || model == "gemini-2.0-flash" {
		model = openai.GPT4oMini
	}
	return &openAIProvider{
		client: openai.NewClient(cfg.APIKey),
		model:  model,
	}
}

func (p *openAIProvider) Name() string { return "openai" }

func (p *openAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: genTemperature,
		TopP:        genTopP,
		MaxTokens:   genMaxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai generate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai generate: no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
