// Package session manages the per-user ordered list of chat sessions
// and the current-session pointer on top of the durable store.
package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/capycare/capycare/backend/internal/model/chat"
	"github.com/capycare/capycare/backend/internal/store"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrLastSession     = errors.New("cannot delete the last remaining session")
)

// AnonymousUser is the fallback namespace when no identity is present.
const AnonymousUser = "anonymous"

const (
	sessionsKey = "sessions"
	currentKey  = "current-session"

	titleLimit = 30
)

// Repository persists sessions per user namespace. The store offers no
// multi-key transactions, so every read-modify-write cycle runs under
// the repository mutex.
type Repository struct {
	mu    sync.Mutex
	store store.Store
	now   func() time.Time
}

// NewRepository returns a Repository backed by s.
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s, now: func() time.Time { return time.Now().UTC() }}
}

func namespace(userID string) string {
	if strings.TrimSpace(userID) == "" {
		return AnonymousUser
	}
	return userID
}

func (r *Repository) load(userID string) []chat.Session {
	var sessions []chat.Session
	// Corrupt or missing lists read as empty; the next write recreates them.
	_, _ = r.store.Get(store.Key(namespace(userID), sessionsKey), &sessions)
	return sessions
}

func (r *Repository) save(userID string, sessions []chat.Session) error {
	return r.store.Put(store.Key(namespace(userID), sessionsKey), sessions)
}

func (r *Repository) currentID(userID string) string {
	var id string
	_, _ = r.store.Get(store.Key(namespace(userID), currentKey), &id)
	return id
}

func (r *Repository) setCurrentID(userID, sessionID string) error {
	return r.store.Put(store.Key(namespace(userID), currentKey), sessionID)
}

// List returns the user's sessions in stored order, newest-created first.
func (r *Repository) List(userID string) []chat.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(userID)
}

// Create provisions a fresh session, prepends it to the stored list,
// and makes it current.
func (r *Repository) Create(userID string) (chat.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.createLocked(userID)
}

func (r *Repository) createLocked(userID string) (chat.Session, error) {
	now := r.now()
	session := chat.Session{
		ID:            uuid.NewString(),
		Title:         chat.DefaultTitle,
		CreatedAt:     now,
		LastUpdatedAt: now,
		Messages:      []chat.Message{},
	}

	sessions := append([]chat.Session{session}, r.load(userID)...)
	if err := r.save(userID, sessions); err != nil {
		return chat.Session{}, err
	}
	if err := r.setCurrentID(userID, session.ID); err != nil {
		return chat.Session{}, err
	}
	return session, nil
}

// Current resolves the user's current session. A missing or dangling
// pointer self-heals by creating a fresh session.
func (r *Repository) Current(userID string) (chat.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.currentID(userID)
	if id != "" {
		if s, ok := find(r.load(userID), id); ok {
			return s, nil
		}
	}
	return r.createLocked(userID)
}

// Get returns the session with the given id.
func (r *Repository) Get(userID, sessionID string) (chat.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := find(r.load(userID), sessionID)
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return s, nil
}

// SwitchCurrent moves the current-session pointer to sessionID. Any
// unsaved message buffer for the outgoing session is persisted first
// so the switch never loses edits.
func (r *Repository) SwitchCurrent(userID, sessionID string, unsaved []chat.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prior := r.currentID(userID); prior != "" && prior != sessionID && unsaved != nil {
		if _, err := r.saveMessagesLocked(userID, prior, unsaved); err != nil && !errors.Is(err, ErrSessionNotFound) {
			return err
		}
	}

	if _, ok := find(r.load(userID), sessionID); !ok {
		return ErrSessionNotFound
	}
	return r.setCurrentID(userID, sessionID)
}

// SaveMessages overwrites the session's message list, bumps
// lastUpdatedAt, and recomputes the title.
func (r *Repository) SaveMessages(userID, sessionID string, messages []chat.Message) (chat.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveMessagesLocked(userID, sessionID, messages)
}

func (r *Repository) saveMessagesLocked(userID, sessionID string, messages []chat.Message) (chat.Session, error) {
	sessions := r.load(userID)
	idx := indexOf(sessions, sessionID)
	if idx < 0 {
		return chat.Session{}, ErrSessionNotFound
	}

	s := sessions[idx]
	s.Messages = append([]chat.Message(nil), messages...)
	s.LastUpdatedAt = r.now()
	s.Title = deriveTitle(s.Messages, s.CreatedAt)
	sessions[idx] = s

	if err := r.save(userID, sessions); err != nil {
		return chat.Session{}, err
	}
	return s, nil
}

// Update overwrites a stored session wholesale (messages, mood, title
// recomputation included).
func (r *Repository) Update(userID string, updated chat.Session) (chat.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions := r.load(userID)
	idx := indexOf(sessions, updated.ID)
	if idx < 0 {
		return chat.Session{}, ErrSessionNotFound
	}

	updated.LastUpdatedAt = r.now()
	updated.Title = deriveTitle(updated.Messages, sessions[idx].CreatedAt)
	updated.CreatedAt = sessions[idx].CreatedAt
	sessions[idx] = updated

	if err := r.save(userID, sessions); err != nil {
		return chat.Session{}, err
	}
	return updated, nil
}

// Delete removes a session. The last remaining session cannot be
// deleted; deleting the current one promotes the first remaining
// session to current. The resulting current session is returned.
func (r *Repository) Delete(userID, sessionID string) (chat.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions := r.load(userID)
	idx := indexOf(sessions, sessionID)
	if idx < 0 {
		return chat.Session{}, ErrSessionNotFound
	}
	if len(sessions) == 1 {
		return chat.Session{}, ErrLastSession
	}

	sessions = append(sessions[:idx], sessions[idx+1:]...)
	if err := r.save(userID, sessions); err != nil {
		return chat.Session{}, err
	}

	current := r.currentID(userID)
	if current == sessionID {
		successor := sessions[0]
		if err := r.setCurrentID(userID, successor.ID); err != nil {
			return chat.Session{}, err
		}
		return successor, nil
	}

	if s, ok := find(sessions, current); ok {
		return s, nil
	}
	successor := sessions[0]
	if err := r.setCurrentID(userID, successor.ID); err != nil {
		return chat.Session{}, err
	}
	return successor, nil
}

func find(sessions []chat.Session, id string) (chat.Session, bool) {
	if idx := indexOf(sessions, id); idx >= 0 {
		return sessions[idx], true
	}
	return chat.Session{}, false
}

func indexOf(sessions []chat.Session, id string) int {
	for i, s := range sessions {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// deriveTitle labels a session after its first user message, truncated
// with an ellipsis marker. Without one it falls back to a timestamp
// placeholder so saved sessions never read as brand new.
func deriveTitle(messages []chat.Message, createdAt time.Time) string {
	for _, msg := range messages {
		if msg.Sender != chat.SenderUser {
			continue
		}
		text := strings.TrimSpace(msg.Text)
		if text == "" {
			continue
		}
		runes := []rune(text)
		if len(runes) > titleLimit {
			return string(runes[:titleLimit]) + "..."
		}
		return text
	}
	return "Chat from " + createdAt.Format("Jan 2, 15:04")
}
