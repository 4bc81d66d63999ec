package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"groupme-bot/internal/domain"
	"groupme-bot/internal/search"
)

var errSearchNotConfigured = errors.New("search provider not configured")

// SearchResponder convierte una consulta en "{title}: {url}" del primer resultado.
type SearchResponder struct {
	client  search.Client
	timeout time.Duration
	logger  *zap.Logger
}

// NewSearchResponder acepta client nil: en ese caso responde "not configured" sin salir a la red.
func NewSearchResponder(client search.Client, timeout time.Duration, logger *zap.Logger) *SearchResponder {
	return &SearchResponder{client: client, timeout: timeout, logger: logger}
}

func (r *SearchResponder) Search(ctx context.Context, query string) domain.Reply {
	if r == nil || r.client == nil {
		return domain.Fail(domain.ReplyNotConfigured, errSearchNotConfigured)
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, found, err := r.client.TopResult(ctx, query)
	if err != nil {
		r.logger.Warn("search provider error", zap.Error(err), zap.String("query", query))
		return domain.Fail(domain.ReplyProviderError, err)
	}
	if !found {
		return domain.Fail(domain.ReplyNoResults, nil)
	}
	return domain.Ok(fmt.Sprintf("%s: %s", res.Title, res.Link))
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
