package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates the service configuration.
type Config struct {
	Server  ServerConfig
	AI      AIConfig
	Auth    AuthConfig
	Storage StorageConfig
	Music   MusicConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	auth, err := loadAuthConfig()
	if err != nil {
		return nil, err
	}

	storage, err := loadStorageConfig()
	if err != nil {
		return nil, err
	}

	music, err := loadMusicConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai, Auth: auth, Storage: storage, Music: music}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow passing ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// Provider selects the model backend.
const (
	ProviderGemini = "gemini"
	ProviderArk    = "ark"
)

// AIConfig describes the generative-model backend.
type AIConfig struct {
	Provider    string
	APIKey      string
	AccessKey   string
	SecretKey   string
	Model       string
	BaseURL     string
	Region      string
	Temperature *float64
	MaxTokens   *int
}

// Enabled reports whether a usable credential is configured for the
// selected provider. A disabled gateway still runs; it surfaces a
// configuration-error reply instead of calling out.
func (c AIConfig) Enabled() bool {
	switch c.Provider {
	case ProviderArk:
		return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
	default:
		return c.APIKey != "" && c.APIKey != "YOUR_GEMINI_API_KEY"
	}
}

// NewArkChatModel builds the Ark chat model from this configuration.
func (c AIConfig) NewArkChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("ark credentials missing: provide ARK_API_KEY + AI_MODEL or AK/SK pair")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: temperature,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("AI_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("AI_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	provider := strings.ToLower(getEnvOrDefault("AI_PROVIDER", ProviderGemini))
	if provider != ProviderGemini && provider != ProviderArk {
		return AIConfig{}, fmt.Errorf("invalid AI_PROVIDER value: %q", provider)
	}

	cfg := AIConfig{
		Provider:    provider,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	switch provider {
	case ProviderArk:
		cfg.APIKey = strings.TrimSpace(os.Getenv("ARK_API_KEY"))
		cfg.AccessKey = strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY"))
		cfg.SecretKey = strings.TrimSpace(os.Getenv("ARK_SECRET_KEY"))
		cfg.Model = strings.TrimSpace(os.Getenv("AI_MODEL"))
		cfg.BaseURL = getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3")
		cfg.Region = getEnvOrDefault("ARK_REGION", "cn-beijing")
	default:
		cfg.APIKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
		cfg.Model = getEnvOrDefault("AI_MODEL", "gemini-1.5-flash")
		cfg.BaseURL = getEnvOrDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	}

	return cfg, nil
}

// AuthConfig describes token issuing.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

func loadAuthConfig() (AuthConfig, error) {
	ttlHours, err := parseOptionalIntEnv("AUTH_TOKEN_TTL_HOURS")
	if err != nil {
		return AuthConfig{}, err
	}
	ttl := 24 * time.Hour
	if ttlHours != nil {
		if *ttlHours < 1 {
			return AuthConfig{}, fmt.Errorf("AUTH_TOKEN_TTL_HOURS must be positive")
		}
		ttl = time.Duration(*ttlHours) * time.Hour
	}

	return AuthConfig{
		JWTSecret: strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET")),
		TokenTTL:  ttl,
	}, nil
}

// StorageConfig describes the durable store location.
type StorageConfig struct {
	Path     string
	InMemory bool
}

func loadStorageConfig() (StorageConfig, error) {
	inMemory, err := parseBoolEnv("STORE_IN_MEMORY", false)
	if err != nil {
		return StorageConfig{}, err
	}

	return StorageConfig{
		Path:     getEnvOrDefault("DATA_DIR", "./data"),
		InMemory: inMemory,
	}, nil
}

// MusicConfig describes the external track lookup.
type MusicConfig struct {
	DeezerEnabled bool
	DeezerBaseURL string
	Timeout       time.Duration
}

func loadMusicConfig() (MusicConfig, error) {
	enabled, err := parseBoolEnv("MUSIC_DEEZER_ENABLED", false)
	if err != nil {
		return MusicConfig{}, err
	}

	timeoutSeconds, err := parseOptionalIntEnv("MUSIC_TIMEOUT")
	if err != nil {
		return MusicConfig{}, err
	}
	timeout := 10 * time.Second
	if timeoutSeconds != nil && *timeoutSeconds > 0 {
		timeout = time.Duration(*timeoutSeconds) * time.Second
	}

	return MusicConfig{
		DeezerEnabled: enabled,
		DeezerBaseURL: getEnvOrDefault("MUSIC_DEEZER_BASE_URL", ""),
		Timeout:       timeout,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
