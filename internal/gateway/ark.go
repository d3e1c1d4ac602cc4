package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/capycare/capycare/backend/internal/transcript"
)

// ArkGateway implements Gateway with an eino chain over an Ark chat
// model.
type ArkGateway struct {
	chain        compose.Runnable[map[string]any, *schema.Message]
	systemPrompt string
}

// NewArkGateway compiles the prompt-template + chat-model chain.
func NewArkGateway(ctx context.Context, chatModel model.ChatModel, systemPrompt string) (*ArkGateway, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &ArkGateway{chain: runnable, systemPrompt: systemPrompt}, nil
}

// Send runs the chain and returns the assistant text.
func (g *ArkGateway) Send(ctx context.Context, history []transcript.Turn, userText string) (string, error) {
	msgs := make([]*schema.Message, 0, len(history))
	for _, turn := range history {
		switch turn.Role {
		case transcript.RoleUser:
			msgs = append(msgs, schema.UserMessage(turn.Text))
		case transcript.RoleModel:
			msgs = append(msgs, schema.AssistantMessage(turn.Text, nil))
		}
	}

	input := map[string]any{
		"system":  g.systemPrompt,
		"history": msgs,
		"query":   userText,
	}

	response, err := g.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if response == nil || strings.TrimSpace(response.Content) == "" {
		return "", fmt.Errorf("%w: empty assistant message", ErrMalformed)
	}
	return response.Content, nil
}
