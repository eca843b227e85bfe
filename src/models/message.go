// message.go - Defines the Message struct for representing chat messages across the application.
// Messages are immutable once appended to a session; a session's message list is append-only.

package models

import "time"

// Author identifies who wrote a message.
type Author int

const (
	AuthorUser Author = iota
	AuthorBot
)

// String returns the display name for an author.
func (a Author) String() string {
	if a == AuthorUser {
		return "user"
	}
	return "bot"
}

// Message represents a single chat message.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// IsUser reports whether the message was authored by the user.
func (m Message) IsUser() bool { return m.Author == AuthorUser }
