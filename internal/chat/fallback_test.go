package chat

import "testing"

func pickFirst(n int) int { return 0 }

func TestFallbackReplyGreeting(t *testing.T) {
	got := fallbackReply("Hello there", "natural", pickFirst)
	if got != greetingReplies["natural"][0] {
		t.Errorf("greeting reply = %q", got)
	}

	// case-insensitive substring match
	got = fallbackReply("HEY friend", "warm", pickFirst)
	if got != greetingReplies["warm"][0] {
		t.Errorf("greeting reply = %q", got)
	}
}

func TestFallbackReplyQuestion(t *testing.T) {
	// note: the message must dodge the greeting keywords, "hi" is a
	// bare substring match ("think" would trip it)
	got := fallbackReply("How does that sound?", "calm", pickFirst)
	if got != questionReplies["calm"][0] {
		t.Errorf("question reply = %q", got)
	}
}

func TestFallbackReplyGeneric(t *testing.T) {
	got := fallbackReply("The weather was nice today", "energetic", pickFirst)
	if got != genericReplies["energetic"][0] {
		t.Errorf("generic reply = %q", got)
	}
}

// Unknown styles reuse the natural lists.
func TestFallbackReplyUnknownStyle(t *testing.T) {
	got := fallbackReply("Just a statement", "robotic", pickFirst)
	if got != genericReplies["natural"][0] {
		t.Errorf("unknown style reply = %q", got)
	}
}

// Every style carries five candidates per category.
func TestFallbackListsComplete(t *testing.T) {
	for style := range VoiceStyles {
		for name, table := range map[string]map[string][]string{
			"greeting": greetingReplies,
			"question": questionReplies,
			"generic":  genericReplies,
		} {
			if len(table[style]) != 5 {
				t.Errorf("style %q has %d %s replies, want 5", style, len(table[style]), name)
			}
		}
	}
}

// All indexes must be reachable through the injected random source.
func TestFallbackReplyCoverage(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		idx := i
		seen[fallbackReply("an ordinary statement", "natural", func(n int) int { return idx % n })] = true
	}
	if len(seen) != 5 {
		t.Errorf("expected 5 distinct generic replies, got %d", len(seen))
	}
}
