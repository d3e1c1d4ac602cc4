package moodlog_test

import (
	"testing"

	"github.com/capycare/capycare/backend/internal/model/mood"
	"github.com/capycare/capycare/backend/internal/moodlog"
	"github.com/capycare/capycare/backend/internal/store"
)

func TestAddIgnoresUntrackedMood(t *testing.T) {
	l := moodlog.NewLog(store.NewMemoryStore())

	entry, err := l.Add("alice", mood.Default)
	if err != nil {
		t.Fatalf("Add err: %v", err)
	}
	if entry.ID != "" {
		t.Fatal("default mood must not produce an entry")
	}
	if got := len(l.Entries("alice")); got != 0 {
		t.Fatalf("expected empty log, got %d entries", got)
	}
}

func TestEntriesNewestFirst(t *testing.T) {
	l := moodlog.NewLog(store.NewMemoryStore())

	first, _ := l.Add("alice", mood.Happy)
	second, _ := l.Add("alice", mood.Sad)

	entries := l.Entries("alice")
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != second.ID || entries[1].ID != first.ID {
		t.Fatal("entries should be ordered newest first")
	}
}

func TestStats(t *testing.T) {
	l := moodlog.NewLog(store.NewMemoryStore())

	l.Add("alice", mood.Happy)
	l.Add("alice", mood.Happy)
	l.Add("alice", mood.Anxious)

	stats := l.Stats("alice")
	if stats.Total != 3 {
		t.Fatalf("unexpected total: %d", stats.Total)
	}
	if stats.MostCommon != mood.Happy {
		t.Fatalf("unexpected most common mood: %s", stats.MostCommon)
	}
	if stats.ThisWeek != 3 {
		t.Fatalf("entries just added should count toward this week, got %d", stats.ThisWeek)
	}
}

func TestStatsEmpty(t *testing.T) {
	l := moodlog.NewLog(store.NewMemoryStore())

	stats := l.Stats("alice")
	if stats.Total != 0 || stats.ThisWeek != 0 {
		t.Fatalf("unexpected stats for empty log: %+v", stats)
	}
	if stats.MostCommon != "" {
		t.Fatalf("most common should be empty, got %q", stats.MostCommon)
	}
}

func TestTrendCoversEveryDay(t *testing.T) {
	l := moodlog.NewLog(store.NewMemoryStore())
	l.Add("alice", mood.Calm)

	points := l.Trend("alice", 7)
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}

	for i := 1; i < len(points); i++ {
		if points[i-1].Date >= points[i].Date {
			t.Fatalf("points must be oldest first: %q then %q", points[i-1].Date, points[i].Date)
		}
	}

	today := points[len(points)-1]
	if today.Counts[mood.Calm] != 1 {
		t.Fatalf("today's bucket should hold the entry, got %+v", today.Counts)
	}
	for _, m := range mood.Tracked() {
		if _, ok := today.Counts[m]; !ok {
			t.Fatalf("every tracked mood needs a bucket, missing %s", m)
		}
	}
}

func TestTrendDefaultsWindow(t *testing.T) {
	l := moodlog.NewLog(store.NewMemoryStore())

	points := l.Trend("alice", 0)
	if len(points) != moodlog.TrendDays {
		t.Fatalf("expected %d points, got %d", moodlog.TrendDays, len(points))
	}
}

func TestLogsAreNamespaced(t *testing.T) {
	l := moodlog.NewLog(store.NewMemoryStore())
	l.Add("alice", mood.Happy)

	if got := len(l.Entries("bob")); got != 0 {
		t.Fatalf("bob should have no entries, got %d", got)
	}
}
