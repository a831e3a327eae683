// Package chat implements the response generator: prompt assembly,
// the pluggable text-generation provider, the deterministic fallback
// and emotion tagging.
package chat

// VoiceStyle bundles display info and delivery parameters for one of
// the named conversational styles.
type VoiceStyle struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Pitch         float64 `json:"pitch"`
	Rate          float64 `json:"rate"`
	Volume        float64 `json:"volume"`
	PauseDuration float64 `json:"pause_duration"`
}

const DefaultStyle = "natural"

// VoiceStyles is the fixed style catalog served on /voices.
var VoiceStyles = map[string]VoiceStyle{
	"natural": {
		Name:          "Natural Human 🗣️",
		Description:   "Normal conversational tone",
		Pitch:         1.0,
		Rate:          1.0,
		Volume:        1.0,
		PauseDuration: 0.8,
	},
	"warm": {
		Name:          "Warm & Friendly 😊",
		Description:   "Friendly, caring tone with warmth",
		Pitch:         1.1,
		Rate:          0.95,
		Volume:        1.0,
		PauseDuration: 1.0,
	},
	"energetic": {
		Name:          "Energetic ⚡",
		Description:   "Lively and enthusiastic",
		Pitch:         1.2,
		Rate:          1.2,
		Volume:        1.0,
		PauseDuration: 0.6,
	},
	"calm": {
		Name:          "Calm & Soothing 🍃",
		Description:   "Relaxed, peaceful tone",
		Pitch:         0.9,
		Rate:          0.85,
		Volume:        0.9,
		PauseDuration: 1.2,
	},
	"playful": {
		Name:          "Playful 😄",
		Description:   "Fun, light-hearted with smiles",
		Pitch:         1.15,
		Rate:          1.1,
		Volume:        1.0,
		PauseDuration: 0.7,
	},
}

// GetVoiceStyle resolves a style key, falling back to natural for
// anything unrecognized.
func GetVoiceStyle(style string) VoiceStyle {
	if s, ok := VoiceStyles[style]; ok {
		return s
	}
	return VoiceStyles[DefaultStyle]
}

// NormalizeStyle maps unknown style keys to the default.
func NormalizeStyle(style string) string {
	if _, ok := VoiceStyles[style]; ok {
		return style
	}
	return DefaultStyle
}

// stylePrompts are the instruction preambles prepended to every
// generation request, one per conversational style.
var stylePrompts = map[string]string{
	"natural": `You are Aiko, a friendly and natural human conversational partner.
Speak like a real person - use contractions (I'm, you're), occasional filler words, and natural pauses.
Be empathetic, show genuine interest, and respond like you're having a real conversation.
Keep responses conversational and avoid robotic patterns.`,
	"warm": `You are Aiko, a warm and caring friend.
Speak with genuine warmth and empathy. Show you care about the conversation.
Use comforting language and be supportive.`,
	"energetic": `You are Aiko, an energetic and enthusiastic friend.
Speak with excitement and positivity! Use exclamation marks appropriately.
Be encouraging and motivational.`,
	"calm": `You are Aiko, a calm and soothing presence.
Speak slowly and clearly, with a peaceful tone.
Be reassuring and create a relaxing atmosphere.`,
	"playful": `You are Aiko, a playful and fun friend.
Use humor and light-hearted language. Tease playfully when appropriate.
Keep things fun and engaging.`,
}

// StylePrompt returns the instruction preamble for a style, defaulting
// to natural.
func StylePrompt(style string) string {
	if p, ok := stylePrompts[style]; ok {
		return p
	}
	return stylePrompts[DefaultStyle]
}
