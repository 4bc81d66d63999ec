package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// MaxTextLength es el límite de caracteres que acepta GroupMe por post.
const MaxTextLength = 1000

// Notifier publica la respuesta en el canal de chat. Los errores se loguean, nunca se devuelven.
type Notifier interface {
	Send(ctx context.Context, text string)
}

// GroupMeNotifier postea como bot usando POST /bots/post.
type GroupMeNotifier struct {
	baseURL string
	botID   string
	timeout time.Duration
	client  *http.Client
	logger  *zap.Logger
}

func NewGroupMeNotifier(baseURL, botID string, timeout time.Duration, httpClient *http.Client, logger *zap.Logger) *GroupMeNotifier {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = "https://api.groupme.com/v3"
	}
	return &GroupMeNotifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		botID:   botID,
		timeout: timeout,
		client:  httpClient,
		logger:  logger,
	}
}

type botPostRequest struct {
	BotID string `json:"bot_id"`
	Text  string `json:"text"`
}

func (n *GroupMeNotifier) Send(ctx context.Context, text string) {
	if err := n.post(ctx, truncate(text, MaxTextLength)); err != nil {
		n.logger.Warn("send error", zap.Error(err), zap.String("bot_id", n.botID))
	}
}

func (n *GroupMeNotifier) post(ctx context.Context, text string) error {
	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	body, err := json.Marshal(botPostRequest{BotID: n.botID, Text: text})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/bots/post", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("groupme http error: status=%d", resp.StatusCode)
	}
	return nil
}

// WriterNotifier escribe las respuestas en un io.Writer (modo consola).
type WriterNotifier struct {
	w      io.Writer
	prefix string
}

func NewWriterNotifier(w io.Writer, prefix string) *WriterNotifier {
	return &WriterNotifier{w: w, prefix: prefix}
}

func (n *WriterNotifier) Send(_ context.Context, text string) {
	fmt.Fprintf(n.w, "%s%s\n", n.prefix, text)
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
