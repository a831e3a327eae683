package chat

import "testing"

func TestDetectEmotion(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"That's wonderful, I'm so happy!", "happy"},
		{"I'm sorry to hear that.", "sad"},
		{"Wow, that is something", "excited"},
		{"Let's relax for a bit", "calm"},
		{"hehe, nice one", "playful"},
		{"Perhaps we could consider it", "thoughtful"},
		{"The sky is blue today", "neutral"},
		{"", "neutral"},
	}
	for _, tc := range cases {
		if got := DetectEmotion(tc.text); got != tc.want {
			t.Errorf("DetectEmotion(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

// Table order is the tie-break: "happy" wins over "excited" for text
// matching both.
func TestDetectEmotionOrder(t *testing.T) {
	if got := DetectEmotion("wow, that makes me happy"); got != "happy" {
		t.Errorf("expected happy to win by table order, got %q", got)
	}
	// "!" is an excited keyword, but a happy keyword earlier in the
	// table still takes priority
	if got := DetectEmotion("great!"); got != "happy" {
		t.Errorf("expected happy, got %q", got)
	}
}
