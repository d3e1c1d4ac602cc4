package session_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/capycare/capycare/backend/internal/model/chat"
	"github.com/capycare/capycare/backend/internal/session"
	"github.com/capycare/capycare/backend/internal/store"
)

func newRepo() *session.Repository {
	return session.NewRepository(store.NewMemoryStore())
}

func TestCreatePrependsAndBecomesCurrent(t *testing.T) {
	repo := newRepo()

	first, err := repo.Create("alice")
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	second, err := repo.Create("alice")
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}

	list := repo.List("alice")
	if len(list) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatal("newest session should be listed first")
	}

	current, err := repo.Current("alice")
	if err != nil {
		t.Fatalf("Current err: %v", err)
	}
	if current.ID != second.ID {
		t.Fatalf("current should point at the newest session, got %s", current.ID)
	}
}

func TestCurrentSelfHealsWithoutSessions(t *testing.T) {
	repo := newRepo()

	current, err := repo.Current("alice")
	if err != nil {
		t.Fatalf("Current err: %v", err)
	}
	if current.ID == "" {
		t.Fatal("a fresh session should have been created")
	}
	if current.Title != chat.DefaultTitle {
		t.Fatalf("fresh session title should be %q, got %q", chat.DefaultTitle, current.Title)
	}

	again, err := repo.Current("alice")
	if err != nil {
		t.Fatalf("Current err: %v", err)
	}
	if again.ID != current.ID {
		t.Fatal("self-healed session should be stable across calls")
	}
}

func TestSwitchCurrent(t *testing.T) {
	repo := newRepo()
	first, _ := repo.Create("alice")
	repo.Create("alice")

	if err := repo.SwitchCurrent("alice", first.ID, nil); err != nil {
		t.Fatalf("SwitchCurrent err: %v", err)
	}

	current, err := repo.Current("alice")
	if err != nil {
		t.Fatalf("Current err: %v", err)
	}
	if current.ID != first.ID {
		t.Fatalf("current should be %s, got %s", first.ID, current.ID)
	}
}

func TestSwitchCurrentPersistsUnsavedMessages(t *testing.T) {
	repo := newRepo()
	first, _ := repo.Create("alice")
	second, _ := repo.Create("alice")

	unsaved := []chat.Message{{ID: "m1", Sender: chat.SenderUser, Text: "remember me"}}
	if err := repo.SwitchCurrent("alice", first.ID, unsaved); err != nil {
		t.Fatalf("SwitchCurrent err: %v", err)
	}

	stored, err := repo.Get("alice", second.ID)
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if len(stored.Messages) != 1 || stored.Messages[0].Text != "remember me" {
		t.Fatal("outgoing session messages should be persisted before the switch")
	}
}

func TestSwitchCurrentUnknownSession(t *testing.T) {
	repo := newRepo()
	repo.Create("alice")

	err := repo.SwitchCurrent("alice", "missing", nil)
	if !errors.Is(err, session.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestDeleteLastSessionRefused(t *testing.T) {
	repo := newRepo()
	only, _ := repo.Create("alice")

	_, err := repo.Delete("alice", only.ID)
	if !errors.Is(err, session.ErrLastSession) {
		t.Fatalf("expected ErrLastSession, got %v", err)
	}
	if len(repo.List("alice")) != 1 {
		t.Fatal("refused delete must leave the list intact")
	}
}

func TestDeleteCurrentPromotesSuccessor(t *testing.T) {
	repo := newRepo()
	older, _ := repo.Create("alice")
	newest, _ := repo.Create("alice")

	successor, err := repo.Delete("alice", newest.ID)
	if err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if successor.ID != older.ID {
		t.Fatalf("first remaining session should be promoted, got %s", successor.ID)
	}

	current, _ := repo.Current("alice")
	if current.ID != older.ID {
		t.Fatal("current pointer should follow the promotion")
	}
}

func TestDeleteNonCurrentKeepsCurrent(t *testing.T) {
	repo := newRepo()
	older, _ := repo.Create("alice")
	newest, _ := repo.Create("alice")

	current, err := repo.Delete("alice", older.ID)
	if err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if current.ID != newest.ID {
		t.Fatal("deleting a non-current session must not move the pointer")
	}
}

func TestUsersAreIsolated(t *testing.T) {
	repo := newRepo()
	repo.Create("alice")
	repo.Create("alice")

	if got := len(repo.List("bob")); got != 0 {
		t.Fatalf("bob should see no sessions, got %d", got)
	}

	bobSession, _ := repo.Create("bob")
	aliceCurrent, _ := repo.Current("alice")
	if aliceCurrent.ID == bobSession.ID {
		t.Fatal("current pointers must be namespaced per user")
	}
}

func TestSaveMessagesDerivesTitle(t *testing.T) {
	repo := newRepo()
	s, _ := repo.Create("alice")

	messages := []chat.Message{
		{Sender: chat.SenderBot, Text: "Hi! I'm Capy."},
		{Sender: chat.SenderUser, Text: "I had a rough day at work"},
	}
	saved, err := repo.SaveMessages("alice", s.ID, messages)
	if err != nil {
		t.Fatalf("SaveMessages err: %v", err)
	}
	if saved.Title != "I had a rough day at work" {
		t.Fatalf("title should come from the first user message, got %q", saved.Title)
	}
}

func TestTitleTruncatedAtThirtyRunes(t *testing.T) {
	repo := newRepo()
	s, _ := repo.Create("alice")

	long := strings.Repeat("a", 45)
	saved, err := repo.SaveMessages("alice", s.ID, []chat.Message{
		{Sender: chat.SenderUser, Text: long},
	})
	if err != nil {
		t.Fatalf("SaveMessages err: %v", err)
	}
	want := strings.Repeat("a", 30) + "..."
	if saved.Title != want {
		t.Fatalf("unexpected truncated title: %q", saved.Title)
	}
}

func TestTitleFallsBackToTimestamp(t *testing.T) {
	repo := newRepo()
	s, _ := repo.Create("alice")

	saved, err := repo.SaveMessages("alice", s.ID, []chat.Message{
		{Sender: chat.SenderBot, Text: "Hi! I'm Capy."},
	})
	if err != nil {
		t.Fatalf("SaveMessages err: %v", err)
	}
	if !strings.HasPrefix(saved.Title, "Chat from ") {
		t.Fatalf("expected timestamp fallback title, got %q", saved.Title)
	}
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	repo := newRepo()
	s, _ := repo.Create("alice")

	updated := s
	updated.CreatedAt = updated.CreatedAt.AddDate(-1, 0, 0)
	updated.Messages = []chat.Message{{Sender: chat.SenderUser, Text: "hello"}}

	saved, err := repo.Update("alice", updated)
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if !saved.CreatedAt.Equal(s.CreatedAt) {
		t.Fatal("Update must not rewrite the creation timestamp")
	}
	if !saved.LastUpdatedAt.After(s.LastUpdatedAt) && !saved.LastUpdatedAt.Equal(s.LastUpdatedAt) {
		t.Fatal("Update should bump lastUpdatedAt")
	}
}
