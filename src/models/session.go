package models

import (
	"strings"
	"time"
)

// DefaultTitle is the placeholder title a session carries until it is archived.
const DefaultTitle = "New Chat"

// titleWords is how many words of the first user message become the archive title.
const titleWords = 4

// ChatSession represents one conversation: an append-only, insertion-ordered
// message list seeded with a single bot welcome message.
type ChatSession struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
}

// Append adds a message to the end of the session.
func (s *ChatSession) Append(msg Message) {
	s.Messages = append(s.Messages, msg)
}

// UserMessageCount returns how many messages in the session were authored by
// the user. Resuming an archived session re-applies this as consumed quota.
func (s *ChatSession) UserMessageCount() int {
	n := 0
	for _, m := range s.Messages {
		if m.IsUser() {
			n++
		}
	}
	return n
}

// HasUserMessages reports whether the session holds anything beyond the seed
// welcome message.
func (s *ChatSession) HasUserMessages() bool {
	return len(s.Messages) > 1
}

// FirstUserMessage returns the first user-authored message text, or "" if the
// session only holds the seed message.
func (s *ChatSession) FirstUserMessage() string {
	for _, m := range s.Messages {
		if m.IsUser() {
			return m.Text
		}
	}
	return ""
}

// DeriveTitle builds an archive title from the first user message: the first
// four words followed by an ellipsis.
func DeriveTitle(firstMessage string) string {
	if strings.TrimSpace(firstMessage) == "" {
		return DefaultTitle
	}
	words := strings.Fields(firstMessage)
	if len(words) > titleWords {
		words = words[:titleWords]
	}
	return strings.Join(words, " ") + "..."
}
