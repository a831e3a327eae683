package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/amanullahykhan/voice-chatbot-project/internal/store"

	"github.com/rs/zerolog"
)

type fakeProvider struct {
	reply string
	err   error
	// last prompt seen, for assertions
	prompt string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func newTestGenerator(p Provider) *Generator {
	return NewGenerator(p, time.Second, zerolog.Nop(), WithPick(func(n int) int { return 0 }))
}

func TestGenerateWithProvider(t *testing.T) {
	p := &fakeProvider{reply: "**That** sounds *wonderful*"}
	g := newTestGenerator(p)

	res := g.Generate(context.Background(), "I got the job", nil, "natural")

	if !res.AIGenerated {
		t.Error("expected AI-generated result")
	}
	if res.Text != "That sounds wonderful." {
		t.Errorf("post-processed text = %q", res.Text)
	}
	if res.Emotion != "happy" {
		t.Errorf("emotion = %q, want happy", res.Emotion)
	}
	if res.VoiceStyle != "natural" {
		t.Errorf("style = %q", res.VoiceStyle)
	}
}

func TestGeneratePromptShape(t *testing.T) {
	p := &fakeProvider{reply: "ok."}
	g := newTestGenerator(p)

	history := []store.HistoryEntry{
		{Role: "user", Content: "first message"},
		{Role: "assistant", Content: "first reply"},
	}
	g.Generate(context.Background(), "second message", history, "warm")

	for _, want := range []string{
		"You are Aiko, a warm and caring friend.",
		"User: first message",
		"Aiko: first reply",
		"User: second message",
	} {
		if !strings.Contains(p.prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if !strings.HasSuffix(p.prompt, "Aiko:") {
		t.Error("prompt should end with the assistant cue")
	}
}

func TestGenerateProviderFailureFallsBack(t *testing.T) {
	p := &fakeProvider{err: errors.New("service unreachable")}
	g := newTestGenerator(p)

	res := g.Generate(context.Background(), "hello", nil, "natural")

	if res.AIGenerated {
		t.Error("failed provider call must not be marked AI-generated")
	}
	if res.Text != greetingReplies["natural"][0] {
		t.Errorf("fallback text = %q", res.Text)
	}
}

func TestGenerateWithoutProvider(t *testing.T) {
	g := newTestGenerator(nil)

	if g.AIAvailable() {
		t.Error("nil provider should report AI unavailable")
	}

	res := g.Generate(context.Background(), "any good plans today?", nil, "playful")
	if res.AIGenerated {
		t.Error("fallback result marked AI-generated")
	}
	if res.Text != questionReplies["playful"][0] {
		t.Errorf("fallback text = %q", res.Text)
	}
}

// Unknown style keys collapse to the default before generation.
func TestGenerateUnknownStyle(t *testing.T) {
	g := newTestGenerator(nil)
	res := g.Generate(context.Background(), "statement", nil, "no-such-style")
	if res.VoiceStyle != "natural" {
		t.Errorf("style = %q, want natural", res.VoiceStyle)
	}
	if res.VoiceName != VoiceStyles["natural"].Name {
		t.Errorf("voice name = %q", res.VoiceName)
	}
}

func TestCleanResponse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"**bold** and *italic*", "bold and italic."},
		{"  already fine.  ", "already fine."},
		{"ends with bang!", "ends with bang!"},
		{"a question?", "a question?"},
		{`quoted"`, `quoted"`},
		{"no punctuation", "no punctuation."},
	}
	for _, tc := range cases {
		if got := cleanResponse(tc.in); got != tc.want {
			t.Errorf("cleanResponse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGetVoiceStyle(t *testing.T) {
	if GetVoiceStyle("calm").Rate != 0.85 {
		t.Error("calm style rate wrong")
	}
	if GetVoiceStyle("bogus").Name != VoiceStyles["natural"].Name {
		t.Error("unknown style should fall back to natural")
	}
}
