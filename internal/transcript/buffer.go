// Package transcript maintains the rolling turn window sent to the
// model. It is reconstructable state: rebuilt from session messages,
// never persisted on its own.
package transcript

import "github.com/capycare/capycare/backend/internal/model/chat"

// DefaultLimit caps how many turns accompany a request so API calls
// stay small.
const DefaultLimit = 10

// Role is the wire-level speaker of a turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one {role, text} element of the sendable history.
type Turn struct {
	Role Role
	Text string
}

// Buffer holds at most limit turns, evicting the oldest first.
type Buffer struct {
	limit int
	turns []Turn
}

// New returns a Buffer with the default turn limit.
func New() *Buffer {
	return NewWithLimit(DefaultLimit)
}

// NewWithLimit returns a Buffer capped at limit turns.
func NewWithLimit(limit int) *Buffer {
	if limit < 1 {
		limit = 1
	}
	return &Buffer{limit: limit}
}

// Append records a turn, evicting the oldest when the cap is exceeded.
func (b *Buffer) Append(role Role, text string) {
	b.turns = append(b.turns, Turn{Role: role, Text: text})
	if len(b.turns) > b.limit {
		b.turns = b.turns[1:]
	}
}

// History returns the buffered turns, oldest first.
func (b *Buffer) History() []Turn {
	out := make([]Turn, len(b.turns))
	copy(out, b.turns)
	return out
}

// Len reports the number of buffered turns.
func (b *Buffer) Len() int {
	return len(b.turns)
}

// Rebuild reconstructs a buffer from a session's message list.
// Templated HTML messages never went through the model, so they are
// excluded from the sendable history.
func Rebuild(messages []chat.Message) *Buffer {
	b := New()
	for _, msg := range messages {
		if msg.IsHTML {
			continue
		}
		role := RoleModel
		if msg.Sender == chat.SenderUser {
			role = RoleUser
		}
		b.Append(role, msg.Text)
	}
	return b
}
