// Package classify guesses a tracked mood from free text. It backs the
// manual check-in path, where a user logs how they feel without a
// model round-trip.
package classify

import (
	"strings"

	"github.com/capycare/capycare/backend/internal/model/mood"
)

var keywordBuckets = map[mood.Mood][]string{
	mood.Happy: {
		"happy", "glad", "great", "wonderful", "joy", "smile", "grateful",
		"good day", "cheerful", "content", "lovely", "delighted",
	},
	mood.Sad: {
		"sad", "down", "unhappy", "cry", "lonely", "depressed", "miserable",
		"hopeless", "heartbroken", "upset", "hurt", "grief",
	},
	mood.Anxious: {
		"anxious", "nervous", "worried", "stress", "overwhelmed", "panic",
		"scared", "afraid", "tense", "on edge", "restless", "dread",
	},
	mood.Calm: {
		"calm", "relaxed", "peaceful", "at ease", "quiet", "serene",
		"settled", "mellow", "unwind", "rested",
	},
	mood.Energized: {
		"energized", "pumped", "excited", "motivated", "ready to go",
		"hyped", "unstoppable", "full of energy", "fired up", "thrilled",
	},
}

// FromText scores keyword hits per mood bucket and returns the best
// match. Exclamation marks nudge the score toward the upbeat moods.
func FromText(text string) (mood.Mood, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return mood.Default, false
	}

	scores := make(map[mood.Mood]int)
	for m, keywords := range keywordBuckets {
		for _, word := range keywords {
			if strings.Contains(normalized, word) {
				scores[m] += 3
			}
		}
	}

	if exclamations := strings.Count(text, "!"); exclamations > 0 {
		scores[mood.Energized] += exclamations
		if scores[mood.Happy] > 0 {
			scores[mood.Happy] += exclamations
		}
	}

	best := mood.Default
	bestScore := 0
	for _, m := range mood.Tracked() {
		if s := scores[m]; s > bestScore {
			bestScore = s
			best = m
		}
	}
	if bestScore == 0 {
		return mood.Default, false
	}
	return best, true
}
