package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

var (
	ErrMentionTokenMissing = errors.New("BOT_MENTION_REQUIRED is set but BOT_MENTION is empty")
	ErrUnknownLLMProvider  = errors.New("unknown LLM_PROVIDER")
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort string `env:"PORT" envDefault:"3000"`

	GroupMeBotID  string `env:"GROUPME_BOT_ID"`
	GroupMeAPIURL string `env:"GROUPME_API_URL" envDefault:"https://api.groupme.com/v3"`

	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"chatlogs.sqlite"`

	LLMProvider     string `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	LLMBaseURL      string `env:"LLM_BASE_URL"`
	LLMModel        string `env:"LLM_MODEL"`
	LLMSystemPrompt string `env:"LLM_SYSTEM_PROMPT" envDefault:"You are a helpful GroupMe bot."`

	GoogleCSEKey string `env:"GOOGLE_CSE_KEY"`
	GoogleCSECX  string `env:"GOOGLE_CSE_CX"`

	MentionToken    string `env:"BOT_MENTION"`
	MentionRequired bool   `env:"BOT_MENTION_REQUIRED" envDefault:"false"`
	FactsFile       string `env:"FACTS_FILE"`

	OutboundTimeout time.Duration `env:"OUTBOUND_TIMEOUT" envDefault:"5s"`

	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	DedupeTTL     time.Duration `env:"DEDUPE_TTL" envDefault:"24h"`

	AdminUser string `env:"ADMIN_USER"`
	AdminPass string `env:"ADMIN_PASS"`

	CLIDisplayName string `env:"CLI_DISPLAY_NAME" envDefault:"cli"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate revisa combinaciones que env no puede expresar con tags.
func (c *Config) Validate() error {
	c.LLMProvider = strings.ToLower(strings.TrimSpace(c.LLMProvider))
	switch c.LLMProvider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLLMProvider, c.LLMProvider)
	}
	if c.MentionRequired && strings.TrimSpace(c.MentionToken) == "" {
		return ErrMentionTokenMissing
	}
	if c.OutboundTimeout <= 0 {
		c.OutboundTimeout = 5 * time.Second
	}
	return nil
}

// LLMAPIKey devuelve la credencial del proveedor elegido; vacía deshabilita el fallback de IA.
func (c *Config) LLMAPIKey() string {
	if c.LLMProvider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

// SearchConfigured indica si hay credenciales de Google Custom Search.
func (c *Config) SearchConfigured() bool {
	return c.GoogleCSEKey != "" && c.GoogleCSECX != ""
}

// AdminEnabled indica si se monta /admin.
func (c *Config) AdminEnabled() bool {
	return c.AdminUser != "" && c.AdminPass != ""
}
