package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"groupme-bot/internal/config"
	"groupme-bot/internal/db"
	"groupme-bot/internal/llm"
	"groupme-bot/internal/notifier"
	"groupme-bot/internal/repository"
	"groupme-bot/internal/search"
	"groupme-bot/internal/service"
)

// Deps agrupa las piezas armadas a partir de la configuración.
type Deps struct {
	Logs    *service.ConversationLog
	Webhook *service.WebhookService

	closers []func()
}

// Close libera conexiones en orden inverso a su apertura.
func (d *Deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

// Build arma storage, responders, dispatcher y pipeline. El notifier lo decide el binario.
func Build(ctx context.Context, cfg *config.Config, n notifier.Notifier, logger *zap.Logger) (*Deps, error) {
	deps := &Deps{}

	repo, err := openLogRepository(ctx, cfg, deps, logger)
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.Logs = service.NewConversationLog(repo)

	facts, err := config.LoadFacts(cfg.FactsFile)
	if err != nil {
		deps.Close()
		return nil, err
	}

	var searchClient search.Client
	if cfg.SearchConfigured() {
		gc, err := search.NewGoogleClient(ctx, cfg.GoogleCSEKey, cfg.GoogleCSECX)
		if err != nil {
			deps.Close()
			return nil, err
		}
		searchClient = gc
	}

	llmClient, err := llm.NewFromConfig(ctx, cfg)
	if err != nil {
		deps.Close()
		return nil, err
	}
	var ai *service.AIResponder
	if llmClient != nil {
		ai = service.NewAIResponder(llmClient, cfg.LLMSystemPrompt, cfg.OutboundTimeout, logger)
	}

	dispatcher, err := service.NewDispatcher(
		facts,
		service.NewSearchResponder(searchClient, cfg.OutboundTimeout, logger),
		ai,
		service.DispatcherOptions{MentionToken: cfg.MentionToken, MentionRequired: cfg.MentionRequired},
	)
	if err != nil {
		deps.Close()
		return nil, err
	}

	dedupe := openDeduper(ctx, cfg, deps, logger)

	deps.Webhook = service.NewWebhookService(dispatcher, deps.Logs, n, dedupe, logger)

	logger.Info("pipeline ready",
		zap.Strings("rules", dispatcher.Rules()),
		zap.Bool("search", searchClient != nil),
		zap.Bool("ai", ai != nil),
		zap.Bool("mention_required", cfg.MentionRequired),
	)
	return deps, nil
}

func openLogRepository(ctx context.Context, cfg *config.Config, deps *Deps, logger *zap.Logger) (repository.ConversationLogRepository, error) {
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		deps.closers = append(deps.closers, pool.Close)

		ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.Ping(ctxPing, pool); err != nil {
			return nil, fmt.Errorf("db ping: %w", err)
		}
		if err := db.MigratePostgres(pool); err != nil {
			return nil, err
		}
		logger.Info("conversation log on postgres")
		return repository.NewPgConversationLogRepository(pool), nil
	}

	conn, err := db.NewSQLite(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	deps.closers = append(deps.closers, closeSQLite(conn, logger))
	if err := db.MigrateSQLite(conn.DB); err != nil {
		return nil, err
	}
	logger.Info("conversation log on sqlite", zap.String("path", cfg.SQLitePath))
	return repository.NewSQLiteConversationLogRepository(conn), nil
}

func openDeduper(ctx context.Context, cfg *config.Config, deps *Deps, logger *zap.Logger) service.DeliveryDeduper {
	if cfg.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	deps.closers = append(deps.closers, func() { _ = client.Close() })

	ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing).Err(); err != nil {
		logger.Warn("redis ping failed, duplicate deliveries will not be filtered", zap.Error(err))
		return nil
	}
	return service.NewRedisDeliveryDeduper(client, cfg.DedupeTTL)
}

func closeSQLite(conn *sqlx.DB, logger *zap.Logger) func() {
	return func() {
		if err := conn.Close(); err != nil {
			logger.Warn("sqlite close failed", zap.Error(err))
		}
	}
}
