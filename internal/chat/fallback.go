package chat

import "strings"

// The fallback generator answers without the AI backend. A message is
// classified by shape: greeting keyword, question mark, or anything
// else, and a reply is drawn at random from the matching per-style
// list. Unknown styles use the natural lists.

var greetingKeywords = []string{"hi", "hello", "hey", "greetings"}

var greetingReplies = map[string][]string{
	"natural": {
		"Hi there! How are you doing today?",
		"Hello! It's nice to talk with you.",
		"Hey! What's on your mind?",
		"Hi! Good to hear from you again.",
		"Hello there! How has your day been going?",
	},
	"warm": {
		"Hello! It's so good to see you. How have you been?",
		"Hi there! I've been thinking about our conversations.",
		"Hey! I'm really glad we're talking.",
		"Hello! Your messages always brighten my day.",
		"Hi! I was hoping we'd get to chat today.",
	},
	"energetic": {
		"Hey!! How's it going? I'm excited to chat!",
		"Hi! Wow, great to hear from you!",
		"Hello! Let's have an awesome conversation!",
		"Hey hey! Ready for a fantastic chat?",
		"Hi there! So pumped you're here!",
	},
	"calm": {
		"Hello... It's peaceful to talk with you.",
		"Hi. I hope you're having a calm day.",
		"Hey. Let's have a gentle conversation.",
		"Hello. Take your time, I'm here to listen.",
		"Hi there. It's a quiet pleasure to hear from you.",
	},
	"playful": {
		"Hehe, hi there! Ready for some fun chat?",
		"Hey you! What mischief are we up to today?",
		"Hi! Let's have a playful conversation!",
		"Hello hello! Guess who's happy you showed up?",
		"Heya! I was just about to get bored without you!",
	},
}

var questionReplies = map[string][]string{
	"natural": {
		"That's an interesting question. Let me think about it...",
		"Hmm, I'm not completely sure, but here's what I think...",
		"Good question! I believe...",
		"I've wondered about that too. My take is...",
		"Let me give that a moment of thought...",
	},
	"warm": {
		"I appreciate you asking that. From what I understand...",
		"That's a thoughtful question. I feel that...",
		"Thanks for sharing that question with me. I think...",
		"What a caring thing to wonder about. I'd say...",
		"I'm touched you'd ask me. Here's how I see it...",
	},
	"energetic": {
		"Wow, great question! I'm excited to share my thoughts...",
		"Awesome question! Here's what comes to mind...",
		"Cool question! I think...",
		"Love that question! Let me dive right in...",
		"Now that's a question! Here's my spin on it...",
	},
	"calm": {
		"That's a peaceful question to consider. I believe...",
		"I'll ponder that quietly. It seems to me...",
		"A calm question deserves a thoughtful answer...",
		"Let's sit with that question for a moment. I feel...",
		"Gently considering it, I would say...",
	},
	"playful": {
		"Hehe, tricky question! Let me play with that idea...",
		"Fun question! I'd say...",
		"Ooh, interesting! I think...",
		"You got me thinking now! My playful guess is...",
		"Sneaky question! Here's my mischievous answer...",
	},
}

var genericReplies = map[string][]string{
	"natural": {
		"I understand what you mean. That's really interesting.",
		"Thanks for sharing that with me. It gives me something to think about.",
		"I see what you're saying. That's a good point to consider.",
		"You make a good observation there. I appreciate your perspective.",
		"That's a thoughtful thing to say. I'm enjoying our conversation.",
	},
	"warm": {
		"I really appreciate you sharing that. It means a lot to hear your thoughts.",
		"Thank you for being so open. I value our conversations.",
		"That's very considerate of you to mention. I'm touched.",
		"I'm glad we can talk like this. Your perspective is important.",
		"You have a kind way of expressing yourself. I enjoy our chats.",
	},
	"energetic": {
		"Wow, that's awesome! I love hearing your thoughts!",
		"Cool! That's really exciting to hear!",
		"Fantastic! I'm so glad you mentioned that!",
		"Amazing! Your perspective is really energizing!",
		"Great point! I'm pumped about our conversation!",
	},
	"calm": {
		"That's peaceful to consider. I appreciate the calm in your words.",
		"Thank you for the gentle thoughts. It's soothing to chat.",
		"I find comfort in our conversation. Your words are calming.",
		"That's a serene perspective. I enjoy our peaceful chats.",
		"Your gentle approach to conversation is refreshing.",
	},
	"playful": {
		"Hehe, that's fun to think about! Let's explore that idea!",
		"You have a playful perspective! I like that!",
		"That's a mischievous thought! I'm intrigued!",
		"Fun idea! Let's play with that concept!",
		"You make conversation enjoyable with your playful approach!",
	},
}

func pickReply(table map[string][]string, style string, pick func(n int) int) string {
	list, ok := table[style]
	if !ok {
		list = table[DefaultStyle]
	}
	return list[pick(len(list))]
}

// fallbackReply classifies the user message and draws a reply from
// the matching per-style list. pick(n) returns a random index below n.
func fallbackReply(userMessage, style string, pick func(n int) int) string {
	lower := strings.ToLower(userMessage)

	for _, kw := range greetingKeywords {
		if strings.Contains(lower, kw) {
			return pickReply(greetingReplies, style, pick)
		}
	}

	if strings.Contains(userMessage, "?") {
		return pickReply(questionReplies, style, pick)
	}

	return pickReply(genericReplies, style, pick)
}
