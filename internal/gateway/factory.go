package gateway

import (
	"context"
	"fmt"

	"github.com/capycare/capycare/backend/internal/config"
)

// New selects the gateway implementation for the configured provider.
// The Gemini gateway is always constructible; without a credential it
// short-circuits every Send with ErrUnauthorized so the app stays up.
func New(ctx context.Context, cfg config.AIConfig) (Gateway, error) {
	switch cfg.Provider {
	case config.ProviderArk:
		chatModel, err := cfg.NewArkChatModel(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create ark chat model: %w", err)
		}
		return NewArkGateway(ctx, chatModel, SystemPrompt)
	default:
		return NewGeminiClient(cfg, SystemPrompt), nil
	}
}
