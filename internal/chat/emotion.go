package chat

import "strings"

// emotionTable is scanned in order; the first emotion with any
// keyword substring match wins, so the order is part of the contract.
var emotionTable = []struct {
	emotion  string
	keywords []string
}{
	{"happy", []string{"happy", "great", "wonderful", "excited", "yay", "smile", "love"}},
	{"sad", []string{"sad", "sorry", "unfortunate", "upset", "tear", "miss"}},
	{"excited", []string{"wow", "amazing", "fantastic", "awesome", "cool", "!"}},
	{"calm", []string{"peace", "calm", "relax", "gentle", "soft", "quiet"}},
	{"playful", []string{"fun", "joke", "play", "hehe", "haha", "wink"}},
	{"thoughtful", []string{"think", "consider", "perhaps", "maybe", "possibly"}},
}

// DetectEmotion tags a reply with the first matching emotion from the
// keyword table, or "neutral" when nothing matches.
func DetectEmotion(text string) string {
	lower := strings.ToLower(text)
	for _, row := range emotionTable {
		for _, kw := range row.keywords {
			if strings.Contains(lower, kw) {
				return row.emotion
			}
		}
	}
	return "neutral"
}
