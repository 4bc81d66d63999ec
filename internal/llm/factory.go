package llm

import (
	"context"
	"fmt"

	"groupme-bot/internal/config"
)

// NewFromConfig devuelve el cliente del proveedor configurado, o nil si no hay credencial.
// Un cliente nil deshabilita el fallback de IA.
func NewFromConfig(ctx context.Context, cfg *config.Config) (ChatClient, error) {
	apiKey := cfg.LLMAPIKey()
	if apiKey == "" {
		return nil, nil
	}
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		client, err := NewGeminiClient(ctx, apiKey, cfg.LLMBaseURL, cfg.LLMModel)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.ProviderOpenAI:
		return NewOpenAIClient(apiKey, cfg.LLMBaseURL, cfg.LLMModel), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownLLMProvider, cfg.LLMProvider)
	}
}
