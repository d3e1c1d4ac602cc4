package chat

import (
	"time"

	"github.com/capycare/capycare/backend/internal/model/mood"
)

const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Message is a single rendered turn inside a session. Messages are
// immutable once appended; ordering within a session is append-only.
// IsHTML is only ever true for system-templated content (crisis
// resources, tips, music players), never for raw model or user text.
type Message struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	IsHTML    bool      `json:"isHtml"`
	Mood      mood.Mood `json:"mood"`
	CreatedAt time.Time `json:"createdAt"`
}
