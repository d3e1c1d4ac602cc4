// Package moodlog keeps the per-user append-only record of tracked
// moods and derives the statistics the history view renders.
package moodlog

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/capycare/capycare/backend/internal/model/mood"
	"github.com/capycare/capycare/backend/internal/store"
)

const entriesKey = "moods"

// TrendDays is the default window of the per-day trend series.
const TrendDays = 30

// Entry is one logged mood observation.
type Entry struct {
	ID        string    `json:"id"`
	Mood      mood.Mood `json:"mood"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stats summarizes a user's logged moods.
type Stats struct {
	Total      int       `json:"total"`
	MostCommon mood.Mood `json:"mostCommon,omitempty"`
	ThisWeek   int       `json:"thisWeek"`
}

// TrendPoint carries per-mood counts for one calendar day.
type TrendPoint struct {
	Date   string            `json:"date"`
	Counts map[mood.Mood]int `json:"counts"`
}

// Log records mood entries in the durable store.
type Log struct {
	mu    sync.Mutex
	store store.Store
	now   func() time.Time
}

// NewLog returns a Log backed by s.
func NewLog(s store.Store) *Log {
	return &Log{store: s, now: func() time.Time { return time.Now().UTC() }}
}

func (l *Log) load(userID string) []Entry {
	var entries []Entry
	_, _ = l.store.Get(store.Key(userID, entriesKey), &entries)
	return entries
}

// Add appends a tracked mood observation. Untracked values (the
// default styling state) are ignored without error.
func (l *Log) Add(userID string, m mood.Mood) (Entry, error) {
	if !m.IsTracked() {
		return Entry{}, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry := Entry{ID: uuid.NewString(), Mood: m, CreatedAt: l.now()}
	entries := append(l.load(userID), entry)
	if err := l.store.Put(store.Key(userID, entriesKey), entries); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Entries returns the user's mood history, newest first.
func (l *Log) Entries(userID string) []Entry {
	l.mu.Lock()
	entries := l.load(userID)
	l.mu.Unlock()

	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}

// Stats computes the totals shown above the trend chart.
func (l *Log) Stats(userID string) Stats {
	l.mu.Lock()
	entries := l.load(userID)
	l.mu.Unlock()

	stats := Stats{Total: len(entries)}
	if len(entries) == 0 {
		return stats
	}

	counts := make(map[mood.Mood]int)
	weekAgo := l.now().AddDate(0, 0, -7)
	for _, e := range entries {
		counts[e.Mood]++
		if e.CreatedAt.After(weekAgo) {
			stats.ThisWeek++
		}
	}

	best := 0
	for _, m := range mood.Tracked() {
		if counts[m] > best {
			best = counts[m]
			stats.MostCommon = m
		}
	}
	return stats
}

// Trend buckets entries per calendar day over the trailing window,
// oldest day first. Every day in the window is present, so the series
// is directly chartable.
func (l *Log) Trend(userID string, days int) []TrendPoint {
	if days <= 0 {
		days = TrendDays
	}

	l.mu.Lock()
	entries := l.load(userID)
	l.mu.Unlock()

	today := l.now().Truncate(24 * time.Hour)
	points := make([]TrendPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, i-days+1).Format("2006-01-02")
		counts := make(map[mood.Mood]int, len(mood.Tracked()))
		for _, m := range mood.Tracked() {
			counts[m] = 0
		}
		points[i] = TrendPoint{Date: date, Counts: counts}
		index[date] = i
	}

	for _, e := range entries {
		if i, ok := index[e.CreatedAt.Format("2006-01-02")]; ok {
			points[i].Counts[e.Mood]++
		}
	}
	return points
}
