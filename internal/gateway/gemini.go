package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/capycare/capycare/backend/internal/config"
	"github.com/capycare/capycare/backend/internal/transcript"
)

const placeholderAPIKey = "YOUR_GEMINI_API_KEY"

// GeminiClient implements Gateway against the generateContent REST
// endpoint, carrying the API key as a query credential.
type GeminiClient struct {
	apiKey       string
	model        string
	baseURL      string
	temperature  *float64
	systemPrompt string
	httpClient   *http.Client
}

// NewGeminiClient builds a REST gateway from the AI configuration. An
// absent or placeholder key is allowed; Send then short-circuits with
// ErrUnauthorized.
func NewGeminiClient(cfg config.AIConfig, systemPrompt string) *GeminiClient {
	return &GeminiClient{
		apiKey:       cfg.APIKey,
		model:        cfg.Model,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		temperature:  cfg.Temperature,
		systemPrompt: systemPrompt,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction geminiContent   `json:"systemInstruction"`
	GenerationConfig  map[string]any  `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Send posts the prompt plus history and extracts the first candidate
// text.
func (c *GeminiClient) Send(ctx context.Context, history []transcript.Turn, userText string) (string, error) {
	if c.apiKey == "" || c.apiKey == placeholderAPIKey {
		return "", ErrUnauthorized
	}

	contents := make([]geminiContent, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, geminiContent{
			Role:  string(turn.Role),
			Parts: []geminiPart{{Text: turn.Text}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  string(transcript.RoleUser),
		Parts: []geminiPart{{Text: userText}},
	})

	body := geminiRequest{
		Contents:          contents,
		SystemInstruction: geminiContent{Parts: []geminiPart{{Text: c.systemPrompt}}},
	}
	if c.temperature != nil {
		body.GenerationConfig = map[string]any{"temperature": *c.temperature}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	}

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", ErrMalformed)
	}

	var text strings.Builder
	for _, part := range decoded.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}
