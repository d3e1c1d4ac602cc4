// Package interpret classifies raw model output into a typed outcome.
// The model's text is untrusted: Interpret is total, and anything
// ambiguous degrades to plain chat. A missed mood is acceptable; a
// crash is not.
package interpret

import (
	"encoding/json"
	"strings"

	"github.com/capycare/capycare/backend/internal/model/mood"
)

// Kind discriminates interpreter outcomes.
type Kind int

const (
	KindChat Kind = iota
	KindSuggestSong
	KindSuggestCheckIn
	KindCrisis
	KindMoodTagged
)

// Outcome is the tagged result of interpreting one model reply.
// Text carries the displayable reply for Chat and MoodTagged; Mood is
// set for SuggestSong and MoodTagged.
type Outcome struct {
	Kind Kind
	Text string
	Mood mood.Mood
}

const crisisTag = "[CRISIS]"

// bracket tags are matched case-sensitively; first occurrence wins.
var moodTags = map[string]mood.Mood{
	"[HAPPY]":     mood.Happy,
	"[SAD]":       mood.Sad,
	"[ANXIOUS]":   mood.Anxious,
	"[CALM]":      mood.Calm,
	"[ENERGIZED]": mood.Energized,
	"[NEUTRAL]":   mood.Default,
}

type actionPayload struct {
	Action string `json:"action"`
	Mood   string `json:"mood"`
}

// Interpret parses raw model text. The embedded-JSON action convention
// is tried first, then the bracket-tag convention; with neither, the
// whole text is a plain chat reply.
func Interpret(raw string) Outcome {
	if out, ok := interpretJSON(raw); ok {
		return out
	}
	if out, ok := interpretTags(raw); ok {
		return out
	}
	return Outcome{Kind: KindChat, Text: raw}
}

// interpretJSON scans for the first balanced {...} span and tries the
// action protocol. Unbalanced braces, invalid JSON, and unknown
// actions all report false so the caller falls through.
func interpretJSON(raw string) (Outcome, bool) {
	span, ok := firstBalancedSpan(raw)
	if !ok {
		return Outcome{}, false
	}

	var payload actionPayload
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return Outcome{}, false
	}

	switch payload.Action {
	case "suggest_song":
		m, ok := mood.Parse(payload.Mood)
		if !ok {
			return Outcome{}, false
		}
		return Outcome{Kind: KindSuggestSong, Mood: m}, true
	case "suggest_check_in":
		return Outcome{Kind: KindSuggestCheckIn}, true
	default:
		return Outcome{}, false
	}
}

// interpretTags applies the bracket-tag convention. A crisis tag
// anywhere in the text outranks mood tags.
func interpretTags(raw string) (Outcome, bool) {
	if strings.Contains(raw, crisisTag) {
		return Outcome{Kind: KindCrisis}, true
	}

	bestIdx := -1
	bestTag := ""
	for tag := range moodTags {
		idx := strings.Index(raw, tag)
		if idx < 0 {
			continue
		}
		if bestIdx < 0 || idx < bestIdx {
			bestIdx = idx
			bestTag = tag
		}
	}
	if bestIdx < 0 {
		return Outcome{}, false
	}

	stripped := strings.TrimSpace(strings.Replace(raw, bestTag, "", 1))
	m := moodTags[bestTag]
	if m == mood.Default {
		return Outcome{Kind: KindChat, Text: stripped}, true
	}
	return Outcome{Kind: KindMoodTagged, Text: stripped, Mood: m}, true
}

// firstBalancedSpan returns the first {...} span with matching braces.
// Brace characters inside JSON strings are ignored.
func firstBalancedSpan(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}
	return "", false
}
