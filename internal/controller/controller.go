// Package controller runs the conversation turn state machine:
// Idle -> AwaitingModel -> Applying -> Idle. It appends the user's
// message, invokes the gateway, interprets the reply, applies the
// outcome to the session, and persists the result. Turns for one
// session are serialized so transcript order always reflects
// submission order.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/capycare/capycare/backend/internal/gateway"
	"github.com/capycare/capycare/backend/internal/interpret"
	"github.com/capycare/capycare/backend/internal/model/chat"
	"github.com/capycare/capycare/backend/internal/model/mood"
	musicmodel "github.com/capycare/capycare/backend/internal/model/music"
	"github.com/capycare/capycare/backend/internal/moodlog"
	"github.com/capycare/capycare/backend/internal/music"
	"github.com/capycare/capycare/backend/internal/session"
	"github.com/capycare/capycare/backend/internal/support"
	"github.com/capycare/capycare/backend/internal/transcript"
)

// ErrEmptyMessage rejects blank input before any state changes.
var ErrEmptyMessage = errors.New("message text is required")

// Fixed bot replies for gateway failure classes. These are appended as
// chat messages so a failed turn never breaks the page.
const (
	unauthorizedReply = "It looks like the AI is not configured. Please add a valid API key before chatting."
	retryLaterReply   = "I'm having a little trouble thinking right now. Please try again in a moment."
	songFallbackReply = "My music player seems to be napping. Sorry about that!"
)

// Event is emitted at state transitions for streaming clients.
type Event struct {
	Type    string       `json:"type"` // pending | message | mood
	Message chat.Message `json:"message,omitempty"`
	Mood    mood.Mood    `json:"mood,omitempty"`
}

// EmitFunc receives events during a turn; nil is allowed.
type EmitFunc func(Event)

// TurnResult is the applied outcome of one user turn.
type TurnResult struct {
	Session  chat.Session   `json:"session"`
	Appended []chat.Message `json:"appended"`
	Mood     mood.Mood      `json:"mood"`
	Crisis   bool           `json:"crisis"`
}

// Controller orchestrates the session repository, gateway, interpreter,
// mood log, and music resolver.
type Controller struct {
	sessions *session.Repository
	gateway  gateway.Gateway
	music    *music.Resolver
	moods    *moodlog.Log

	mu    sync.Mutex
	locks map[string]*sync.Mutex
	now   func() time.Time
}

// New wires a Controller.
func New(sessions *session.Repository, gw gateway.Gateway, resolver *music.Resolver, moods *moodlog.Log) *Controller {
	return &Controller{
		sessions: sessions,
		gateway:  gw,
		music:    resolver,
		moods:    moods,
		locks:    make(map[string]*sync.Mutex),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// sessionLock serializes turns per session.
func (c *Controller) sessionLock(userID, sessionID string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := userID + "/" + sessionID
	l, ok := c.locks[key]
	if !ok {
		l = &sync.Mutex{}
		c.locks[key] = l
	}
	return l
}

// CreateSession provisions a session seeded with Capy's greeting.
func (c *Controller) CreateSession(userID string) (chat.Session, error) {
	s, err := c.sessions.Create(userID)
	if err != nil {
		return chat.Session{}, err
	}
	return c.seedGreeting(userID, s)
}

// CurrentSession resolves (or self-heals) the current session, seeding
// the greeting if it is still empty.
func (c *Controller) CurrentSession(userID string) (chat.Session, error) {
	s, err := c.sessions.Current(userID)
	if err != nil {
		return chat.Session{}, err
	}
	if len(s.Messages) > 0 {
		return s, nil
	}
	return c.seedGreeting(userID, s)
}

func (c *Controller) seedGreeting(userID string, s chat.Session) (chat.Session, error) {
	s.Messages = append(s.Messages, c.botMessage(gateway.Greeting, false, mood.Default))
	return c.sessions.Update(userID, s)
}

// HandleUserInput runs one turn without event streaming.
func (c *Controller) HandleUserInput(ctx context.Context, userID, sessionID, text string) (TurnResult, error) {
	return c.HandleTurn(ctx, userID, sessionID, text, nil)
}

// HandleTurn runs one turn of the state machine. sessionID may be
// empty to target the current session. Gateway failures are converted
// into fixed bot replies, not errors; the user's turn stays recorded.
func (c *Controller) HandleTurn(ctx context.Context, userID, sessionID, text string, emit EmitFunc) (TurnResult, error) {
	trimmed := trimInput(text)
	if trimmed == "" {
		return TurnResult{}, ErrEmptyMessage
	}
	if emit == nil {
		emit = func(Event) {}
	}

	s, err := c.resolveSession(userID, sessionID)
	if err != nil {
		return TurnResult{}, err
	}

	lock := c.sessionLock(userID, s.ID)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock; a concurrent turn may have appended.
	s, err = c.sessions.Get(userID, s.ID)
	if err != nil {
		return TurnResult{}, err
	}

	// The sendable history is rebuilt from the persisted messages
	// before this turn's user message joins it.
	history := transcript.Rebuild(s.Messages).History()

	userMsg := chat.Message{
		ID:        uuid.NewString(),
		Sender:    chat.SenderUser,
		Text:      trimmed,
		Mood:      mood.Default,
		CreatedAt: c.now(),
	}
	s.Messages = append(s.Messages, userMsg)
	appended := []chat.Message{userMsg}
	emit(Event{Type: "message", Message: userMsg})
	emit(Event{Type: "pending"})

	raw, sendErr := c.gateway.Send(ctx, history, trimmed)

	result := TurnResult{Crisis: false}
	if sendErr != nil {
		reply := retryLaterReply
		if errors.Is(sendErr, gateway.ErrUnauthorized) {
			reply = unauthorizedReply
		} else {
			log.Printf("[controller] gateway send failed for session=%s: %v", s.ID, sendErr)
		}
		// No mood change on failure; the triggering turn is kept.
		botMsg := c.botMessage(reply, false, mood.Default)
		s.Messages = append(s.Messages, botMsg)
		appended = append(appended, botMsg)
		emit(Event{Type: "message", Message: botMsg})
		result.Mood = s.Mood
	} else {
		outcome := interpret.Interpret(raw)
		s, appended = c.apply(ctx, userID, s, outcome, appended, emit, &result)
	}

	saved, err := c.sessions.Update(userID, s)
	if err != nil {
		return TurnResult{}, fmt.Errorf("failed to persist session: %w", err)
	}

	result.Session = saved
	result.Appended = appended
	return result, nil
}

// apply executes the Applying phase for a successful gateway reply.
func (c *Controller) apply(ctx context.Context, userID string, s chat.Session, outcome interpret.Outcome, appended []chat.Message, emit EmitFunc, result *TurnResult) (chat.Session, []chat.Message) {
	push := func(msg chat.Message) {
		s.Messages = append(s.Messages, msg)
		appended = append(appended, msg)
		emit(Event{Type: "message", Message: msg})
	}
	setMood := func(m mood.Mood) {
		s.Mood = m
		result.Mood = m
		emit(Event{Type: "mood", Mood: m})
	}

	switch outcome.Kind {
	case interpret.KindChat:
		push(c.botMessage(outcome.Text, false, mood.Default))
		setMood(mood.Default)

	case interpret.KindMoodTagged:
		push(c.botMessage(outcome.Text, false, outcome.Mood))
		setMood(outcome.Mood)
		c.logMood(userID, outcome.Mood)

	case interpret.KindSuggestSong:
		setMood(outcome.Mood)
		c.logMood(userID, outcome.Mood)
		push(c.botMessage(fmt.Sprintf("I've logged that you're feeling %s. Let me find a song for you.", outcome.Mood), false, outcome.Mood))

		track, err := c.music.Resolve(ctx, outcome.Mood)
		if err != nil {
			push(c.botMessage(songFallbackReply, false, outcome.Mood))
			break
		}
		push(c.botMessage(describeTrack(track, outcome.Mood), false, outcome.Mood))
		if html := trackPlayerHTML(track); html != "" {
			push(c.botMessage(html, true, outcome.Mood))
		}

	case interpret.KindSuggestCheckIn, interpret.KindCrisis:
		// Fixed safety content only; never a song, never model text.
		setMood(mood.Sad)
		push(c.botMessage(support.CheckInLead, false, mood.Sad))
		push(c.botMessage(support.CrisisResourcesHTML, true, mood.Sad))
		if outcome.Kind == interpret.KindCrisis {
			result.Crisis = true
		}
	}

	return s, appended
}

func (c *Controller) resolveSession(userID, sessionID string) (chat.Session, error) {
	if sessionID == "" {
		return c.CurrentSession(userID)
	}
	return c.sessions.Get(userID, sessionID)
}

func (c *Controller) botMessage(text string, isHTML bool, m mood.Mood) chat.Message {
	return chat.Message{
		ID:        uuid.NewString(),
		Sender:    chat.SenderBot,
		Text:      text,
		IsHTML:    isHTML,
		Mood:      m,
		CreatedAt: c.now(),
	}
}

func (c *Controller) logMood(userID string, m mood.Mood) {
	if _, err := c.moods.Add(userID, m); err != nil {
		log.Printf("[controller] failed to log mood %s: %v", m, err)
	}
}

func describeTrack(track musicmodel.Track, m mood.Mood) string {
	if track.Genre != "" {
		return fmt.Sprintf("How about %q by %s? It's a great %s song that might match your %s mood!", track.Title, track.Artist, track.Genre, m)
	}
	return fmt.Sprintf("How about this? %q by %s.", track.Title, track.Artist)
}

// trackPlayerHTML renders the system-templated player block. Only
// trusted, locally assembled markup goes through the IsHTML path.
func trackPlayerHTML(track musicmodel.Track) string {
	switch {
	case track.YouTubeID != "":
		return fmt.Sprintf(
			`<iframe width="300" height="169" src="https://www.youtube.com/embed/%s?autoplay=0&controls=1&rel=0" frameborder="0" allowfullscreen></iframe>`+
				`<div class="streaming-links"><a href="%s" target="_blank">Listen on Spotify</a> <a href="https://www.youtube.com/watch?v=%s" target="_blank">Watch on YouTube</a></div>`,
			track.YouTubeID, track.SpotifyURL, track.YouTubeID)
	case track.PreviewURL != "":
		return fmt.Sprintf(`<audio controls src="%s"></audio>`, track.PreviewURL)
	default:
		return ""
	}
}

func trimInput(text string) string {
	return strings.TrimSpace(text)
}
