package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GROUPME_BOT_ID", "bot-1")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.HTTPPort != "3000" {
		t.Fatalf("expected default port 3000, got %q", cfg.HTTPPort)
	}
	if cfg.SQLitePath != "chatlogs.sqlite" {
		t.Fatalf("expected default sqlite path, got %q", cfg.SQLitePath)
	}
	if cfg.OutboundTimeout != 5*time.Second {
		t.Fatalf("expected 5s outbound timeout, got %s", cfg.OutboundTimeout)
	}
	if cfg.CLIDisplayName != "cli" {
		t.Fatalf("expected default cli display name, got %q", cfg.CLIDisplayName)
	}
	if cfg.LLMAPIKey() != "" || cfg.SearchConfigured() || cfg.AdminEnabled() {
		t.Fatalf("expected optional integrations disabled by default")
	}
}

func TestLoadConfig_MentionRequiredWithoutToken(t *testing.T) {
	t.Setenv("BOT_MENTION_REQUIRED", "true")
	t.Setenv("BOT_MENTION", "")

	if _, err := LoadConfig(); !errors.Is(err, ErrMentionTokenMissing) {
		t.Fatalf("expected ErrMentionTokenMissing, got %v", err)
	}
}

func TestLoadConfig_UnknownProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "llama")

	if _, err := LoadConfig(); !errors.Is(err, ErrUnknownLLMProvider) {
		t.Fatalf("expected ErrUnknownLLMProvider, got %v", err)
	}
}

func TestConfigLLMAPIKey_ByProvider(t *testing.T) {
	cfg := Config{LLMProvider: " Gemini ", OpenAIAPIKey: "sk-openai", GeminiAPIKey: "g-key"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.LLMAPIKey() != "g-key" {
		t.Fatalf("expected gemini key, got %q", cfg.LLMAPIKey())
	}
}

func TestLoadFacts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "facts.yaml")
	content := `facts:
  - pattern: "when was the club founded"
    reply: "The club was founded in 1998."
  - pattern: "next meeting"
    reply: "Thursdays at 7pm."
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write facts: %v", err)
	}

	facts, err := LoadFacts(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(facts) != 2 {
		t.Fatalf("expected 2 facts, got %d", len(facts))
	}
	if facts[0].Pattern != "when was the club founded" || facts[1].Reply != "Thursdays at 7pm." {
		t.Fatalf("expected facts in file order, got %+v", facts)
	}
}

func TestLoadFacts_EmptyPath(t *testing.T) {
	facts, err := LoadFacts("")
	if err != nil || facts != nil {
		t.Fatalf("expected nil facts and no error, got %+v %v", facts, err)
	}
}

func TestParseFacts_MissingReply(t *testing.T) {
	if _, err := ParseFacts([]byte("facts:\n  - pattern: \"x\"\n")); err == nil {
		t.Fatalf("expected error for fact without reply")
	}
}

func TestParseFacts_BlankReply(t *testing.T) {
	if _, err := ParseFacts([]byte("facts:\n  - pattern: \"meeting\"\n    reply: \"  \"\n")); err == nil {
		t.Fatalf("expected error for fact with blank reply")
	}
}
