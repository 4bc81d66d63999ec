package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"groupme-bot/internal/app"
	"groupme-bot/internal/config"
	"groupme-bot/internal/domain"
	"groupme-bot/internal/notifier"
	"groupme-bot/internal/service"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	deps, err := app.Build(ctx, cfg, notifier.NewWriterNotifier(os.Stdout, "bot> "), logger)
	if err != nil {
		log.Fatal(err)
	}
	defer deps.Close()

	fmt.Println("GroupMe bot local. Escribe un mensaje, /logs para ver el registro, /exit para salir.")
	groupID := "cli-" + uuid.NewString()[:8]

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")

		switch strings.TrimSpace(line) {
		case "":
			continue
		case "/exit":
			return
		case "/logs":
			printLogs(ctx, deps.Logs)
			continue
		}

		msg := domain.InboundMessage{
			ID:          uuid.NewString(),
			GroupID:     groupID,
			SenderKind:  domain.SenderUser,
			DisplayName: cfg.CLIDisplayName,
			Text:        line,
		}
		outcome, err := deps.Webhook.Handle(ctx, msg)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		if outcome.Ignored {
			fmt.Printf("(ignorado: %s)\n", outcome.Reason)
		}
	}
}

func printLogs(ctx context.Context, logs *service.ConversationLog) {
	entries, err := logs.Recent(ctx, 10)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	for _, e := range entries {
		fmt.Printf("[%s] %s: %q -> %q\n", e.Timestamp.Format("15:04:05"), e.User, e.Message, e.Reply)
	}
}
