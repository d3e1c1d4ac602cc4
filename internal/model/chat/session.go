package chat

import (
	"time"

	"github.com/capycare/capycare/backend/internal/model/mood"
)

// DefaultTitle is the title a session carries until it has a user
// message to derive one from.
const DefaultTitle = "New Chat"

// Session is one user-visible chat thread. The message list is the
// durable source of truth; the transcript sent to the model is rebuilt
// from it on demand.
type Session struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Mood          mood.Mood `json:"mood"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	Messages      []Message `json:"messages"`
}
