// Package gateway talks to the generative-model backend. Failures are
// typed so the controller can turn each class into the right
// user-facing chat message without ever crashing a turn.
package gateway

import (
	"context"
	"errors"

	"github.com/capycare/capycare/backend/internal/transcript"
)

var (
	// ErrUnauthorized means the credential is missing or a placeholder.
	// It is raised before any network call so a misconfigured deploy
	// does not consume a turn.
	ErrUnauthorized = errors.New("model credential missing or placeholder")
	// ErrRateLimited means the upstream rejected the call for quota.
	ErrRateLimited = errors.New("model endpoint rate limited")
	// ErrNetwork covers transport failures and non-2xx statuses.
	ErrNetwork = errors.New("model endpoint unreachable")
	// ErrMalformed means a 2xx reply without the expected candidate text.
	ErrMalformed = errors.New("model response malformed")
)

// Gateway sends the system prompt, the bounded history, and the user's
// text to the model and returns the raw reply text.
type Gateway interface {
	Send(ctx context.Context, history []transcript.Turn, userText string) (string, error)
}
