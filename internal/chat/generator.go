package chat

import (
	"context"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/amanullahykhan/voice-chatbot-project/internal/store"

	"github.com/rs/zerolog"
)

// Generator produces one reply per call. It is state-free apart from
// its configuration: provider, call timeout and random source.
type Generator struct {
	provider Provider
	timeout  time.Duration
	pick     func(n int) int
	log      zerolog.Logger
}

// Result is the composed generation outcome returned to the gateway.
type Result struct {
	Text        string
	Emotion     string
	VoiceStyle  string
	VoiceName   string
	AIGenerated bool
	Timestamp   time.Time
}

// Option tweaks a Generator; used by tests to inject determinism.
type Option func(*Generator)

// WithPick replaces the random index source used by the fallback.
func WithPick(pick func(n int) int) Option {
	return func(g *Generator) { g.pick = pick }
}

// NewGenerator builds a Generator. provider may be nil, in which case
// every reply comes from the deterministic fallback.
func NewGenerator(provider Provider, timeout time.Duration, log zerolog.Logger, opts ...Option) *Generator {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	g := &Generator{
		provider: provider,
		timeout:  timeout,
		pick:     rand.Intn,
		log:      log,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AIAvailable reports whether a text-generation backend is configured.
func (g *Generator) AIAvailable() bool {
	return g.provider != nil
}

// Generate builds the prompt, asks the provider, and degrades to the
// fallback on any provider failure. The error never escapes: AI
// unavailability is only visible as AIGenerated=false.
func (g *Generator) Generate(ctx context.Context, userMessage string, history []store.HistoryEntry, style string) Result {
	style = NormalizeStyle(style)

	text := ""
	aiGenerated := false
	if g.provider != nil {
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		raw, err := g.provider.Generate(callCtx, buildPrompt(userMessage, history, style))
		cancel()
		if err != nil {
			g.log.Warn().Err(err).Str("provider", g.provider.Name()).
				Msg("generation failed, using fallback")
		} else {
			text = cleanResponse(raw)
			aiGenerated = true
		}
	}
	if !aiGenerated {
		text = fallbackReply(userMessage, style, g.pick)
	}

	return Result{
		Text:        text,
		Emotion:     DetectEmotion(text),
		VoiceStyle:  style,
		VoiceName:   GetVoiceStyle(style).Name,
		AIGenerated: aiGenerated,
		Timestamp:   time.Now(),
	}
}

// buildPrompt renders style preamble, prior turns and the new message
// into a single completion prompt ending with the assistant cue.
func buildPrompt(userMessage string, history []store.HistoryEntry, style string) string {
	var b strings.Builder
	b.WriteString(StylePrompt(style))
	b.WriteString("\n\nPrevious conversation:\n")
	for _, turn := range history {
		speaker := "Aiko"
		if turn.Role == "user" {
			speaker = "User"
		}
		b.WriteString(speaker)
		b.WriteString(": ")
		b.WriteString(turn.Content)
		b.WriteString("\n")
	}
	b.WriteString("\nUser: ")
	b.WriteString(userMessage)
	b.WriteString("\n\nAiko:")
	return b.String()
}

var (
	boldRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.*?)\*`)
)

// cleanResponse strips markdown emphasis and makes sure the reply
// ends in terminal punctuation.
func cleanResponse(text string) string {
	text = boldRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	text = strings.TrimSpace(text)

	if text != "" && !strings.HasSuffix(text, ".") && !strings.HasSuffix(text, "!") &&
		!strings.HasSuffix(text, "?") && !strings.HasSuffix(text, `"`) &&
		!strings.HasSuffix(text, "'") {
		text += "."
	}
	return text
}
