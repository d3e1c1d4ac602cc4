package interpret_test

import (
	"testing"

	"github.com/capycare/capycare/backend/internal/interpret"
	"github.com/capycare/capycare/backend/internal/model/mood"
)

func TestInterpretPlainChat(t *testing.T) {
	out := interpret.Interpret("Hello there, how was your day?")
	if out.Kind != interpret.KindChat {
		t.Fatalf("unexpected kind: %v", out.Kind)
	}
	if out.Text != "Hello there, how was your day?" {
		t.Fatalf("text should pass through unchanged, got %q", out.Text)
	}
}

func TestInterpretSuggestSong(t *testing.T) {
	out := interpret.Interpret(`Sure! {"action": "suggest_song", "mood": "Happy"}`)
	if out.Kind != interpret.KindSuggestSong {
		t.Fatalf("unexpected kind: %v", out.Kind)
	}
	if out.Mood != mood.Happy {
		t.Fatalf("unexpected mood: %s", out.Mood)
	}
}

func TestInterpretSuggestCheckIn(t *testing.T) {
	out := interpret.Interpret(`{"action": "suggest_check_in"}`)
	if out.Kind != interpret.KindSuggestCheckIn {
		t.Fatalf("unexpected kind: %v", out.Kind)
	}
}

func TestInterpretJSONUnknownActionFallsThrough(t *testing.T) {
	out := interpret.Interpret(`{"action": "dance"} [SAD] I hear you.`)
	if out.Kind != interpret.KindMoodTagged {
		t.Fatalf("unknown action should fall through to tags, got kind %v", out.Kind)
	}
	if out.Mood != mood.Sad {
		t.Fatalf("unexpected mood: %s", out.Mood)
	}
}

func TestInterpretJSONSongWithBadMoodFallsThrough(t *testing.T) {
	out := interpret.Interpret(`{"action": "suggest_song", "mood": "confused"}`)
	if out.Kind != interpret.KindChat {
		t.Fatalf("unparseable mood should degrade to chat, got kind %v", out.Kind)
	}
}

func TestInterpretBracesInsideStrings(t *testing.T) {
	raw := `{"action": "suggest_song", "mood": "calm", "note": "brace } inside"}`
	out := interpret.Interpret(raw)
	if out.Kind != interpret.KindSuggestSong {
		t.Fatalf("string-embedded braces broke the scan, got kind %v", out.Kind)
	}
	if out.Mood != mood.Calm {
		t.Fatalf("unexpected mood: %s", out.Mood)
	}
}

func TestInterpretUnbalancedBraceIsChat(t *testing.T) {
	out := interpret.Interpret(`{"action": "suggest_song", "mood": "happy"`)
	if out.Kind != interpret.KindChat {
		t.Fatalf("unbalanced JSON should degrade to chat, got kind %v", out.Kind)
	}
}

func TestInterpretMoodTagStripped(t *testing.T) {
	out := interpret.Interpret("[HAPPY] That's wonderful to hear!")
	if out.Kind != interpret.KindMoodTagged {
		t.Fatalf("unexpected kind: %v", out.Kind)
	}
	if out.Mood != mood.Happy {
		t.Fatalf("unexpected mood: %s", out.Mood)
	}
	if out.Text != "That's wonderful to hear!" {
		t.Fatalf("tag should be stripped, got %q", out.Text)
	}
}

func TestInterpretFirstTagWins(t *testing.T) {
	out := interpret.Interpret("[CALM] Take a breath. [SAD]")
	if out.Mood != mood.Calm {
		t.Fatalf("earliest tag should win, got %s", out.Mood)
	}
	if out.Text != "Take a breath. [SAD]" {
		t.Fatalf("only the first tag is stripped, got %q", out.Text)
	}
}

func TestInterpretCrisisAnywhere(t *testing.T) {
	out := interpret.Interpret("[HAPPY] all good... just kidding [CRISIS]")
	if out.Kind != interpret.KindCrisis {
		t.Fatalf("crisis tag anywhere must win, got kind %v", out.Kind)
	}
}

func TestInterpretNeutralTagIsChat(t *testing.T) {
	out := interpret.Interpret("[NEUTRAL] Noted.")
	if out.Kind != interpret.KindChat {
		t.Fatalf("neutral tag should be plain chat, got kind %v", out.Kind)
	}
	if out.Text != "Noted." {
		t.Fatalf("unexpected text: %q", out.Text)
	}
}

func TestInterpretNeverPanics(t *testing.T) {
	inputs := []string{
		"", "{", "}", "{{{", `{"a":`, "[", "[CRIS", "\x00\xff",
		`{"action":"suggest_song"}`, "[[HAPPY]]", `{"mood":"sad"}`,
	}
	for _, raw := range inputs {
		out := interpret.Interpret(raw)
		_ = out
	}
}
