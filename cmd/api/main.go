package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"groupme-bot/internal/app"
	"groupme-bot/internal/config"
	apihttp "groupme-bot/internal/http"
	"groupme-bot/internal/notifier"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if cfg.GroupMeBotID == "" {
		logger.Fatal("GROUPME_BOT_ID is required")
	}

	groupme := notifier.NewGroupMeNotifier(cfg.GroupMeAPIURL, cfg.GroupMeBotID, cfg.OutboundTimeout, nil, logger)

	deps, err := app.Build(ctx, cfg, groupme, logger)
	if err != nil {
		logger.Fatal("startup", zap.Error(err))
	}
	defer deps.Close()

	var admins apihttp.AdminAccounts
	if cfg.AdminEnabled() {
		admins = apihttp.AdminAccounts{cfg.AdminUser: cfg.AdminPass}
	} else {
		logger.Info("admin routes disabled")
	}

	webhookHandler := apihttp.NewWebhookHandler(logger, deps.Webhook)
	adminHandler := apihttp.NewAdminHandler(logger, deps.Logs)
	router := apihttp.NewRouter(logger, webhookHandler, adminHandler, admins)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}
