package mood

import "strings"

// Mood classifies a bot message and drives styling plus music lookup.
type Mood string

const (
	Default   Mood = "default"
	Happy     Mood = "happy"
	Sad       Mood = "sad"
	Anxious   Mood = "anxious"
	Calm      Mood = "calm"
	Energized Mood = "energized"
)

// Tracked lists the moods that are logged and charted. Default is a
// styling state only and never enters the mood log.
func Tracked() []Mood {
	return []Mood{Happy, Sad, Anxious, Calm, Energized}
}

// Parse maps free-form mood text ("Happy", "sad") onto a tracked mood.
func Parse(raw string) (Mood, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "happy":
		return Happy, true
	case "sad":
		return Sad, true
	case "anxious":
		return Anxious, true
	case "calm":
		return Calm, true
	case "energized":
		return Energized, true
	default:
		return Default, false
	}
}

// IsTracked reports whether m is one of the five logged moods.
func (m Mood) IsTracked() bool {
	switch m {
	case Happy, Sad, Anxious, Calm, Energized:
		return true
	default:
		return false
	}
}
