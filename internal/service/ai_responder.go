package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"groupme-bot/internal/domain"
	"groupme-bot/internal/llm"
)

const DefaultSystemPrompt = "You are a helpful GroupMe bot."

// AIResponder arma la conversación persona + turno de usuario y pide una completion.
type AIResponder struct {
	client       llm.ChatClient
	systemPrompt string
	timeout      time.Duration
	logger       *zap.Logger
}

func NewAIResponder(client llm.ChatClient, systemPrompt string, timeout time.Duration, logger *zap.Logger) *AIResponder {
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}
	return &AIResponder{
		client:       client,
		systemPrompt: systemPrompt,
		timeout:      timeout,
		logger:       logger,
	}
}

// Enabled indica si hay un proveedor configurado.
func (r *AIResponder) Enabled() bool {
	return r != nil && r.client != nil
}

func (r *AIResponder) Chat(ctx context.Context, message, displayName string) domain.Reply {
	if !r.Enabled() {
		return domain.Fail(domain.ReplyNotConfigured, nil)
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	conv := []llm.Message{
		{Role: llm.RoleSystem, Content: r.systemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf("%s says: %s", displayName, message)},
	}
	raw, err := r.client.Complete(ctx, conv)
	if err != nil {
		r.logger.Warn("llm provider error", zap.Error(err), zap.String("user", displayName))
		return domain.Fail(domain.ReplyProviderError, err)
	}

	text := cleanCompletion(raw)
	if text == "" {
		r.logger.Warn("llm provider error", zap.Error(llm.ErrEmptyCompletion), zap.String("user", displayName))
		return domain.Fail(domain.ReplyProviderError, llm.ErrEmptyCompletion)
	}
	return domain.Ok(text)
}
