package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"groupme-bot/internal/domain"
	"groupme-bot/internal/service"
)

type mockLogRepo struct {
	created   []domain.ConversationLogEntry
	createErr error
	listData  []domain.ConversationLogEntry
	listErr   error
	lastLimit int
}

func (m *mockLogRepo) Create(_ context.Context, entry domain.ConversationLogEntry) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, entry)
	return nil
}

func (m *mockLogRepo) ListRecent(_ context.Context, limit int) ([]domain.ConversationLogEntry, error) {
	m.lastLimit = limit
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listData, nil
}

type mockNotifier struct {
	sent []string
}

func (m *mockNotifier) Send(_ context.Context, text string) {
	m.sent = append(m.sent, text)
}

type testStack struct {
	router   *gin.Engine
	repo     *mockLogRepo
	notifier *mockNotifier
}

func setupRouter(t *testing.T, opts service.DispatcherOptions, admins AdminAccounts) *testStack {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &mockLogRepo{}
	n := &mockNotifier{}
	dispatcher, err := service.NewDispatcher(nil, service.NewSearchResponder(nil, time.Second, zap.NewNop()), nil, opts)
	if err != nil {
		t.Fatalf("new dispatcher: %v", err)
	}
	logs := service.NewConversationLog(repo)
	webhook := service.NewWebhookService(dispatcher, logs, n, nil, zap.NewNop())

	r := NewRouter(zap.NewNop(),
		NewWebhookHandler(zap.NewNop(), webhook),
		NewAdminHandler(zap.NewNop(), logs),
		admins,
	)
	return &testStack{router: r, repo: repo, notifier: n}
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestWebhookHealth(t *testing.T) {
	s := setupRouter(t, service.DispatcherOptions{}, nil)

	rec := performRequest(s.router, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != healthMessage {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestWebhookReceive_Greeting(t *testing.T) {
	s := setupRouter(t, service.DispatcherOptions{}, nil)

	rec := performRequest(s.router, http.MethodPost, "/", map[string]string{
		"sender_type": "user",
		"name":        "Alice",
		"text":        "hello",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if len(s.repo.created) != 1 || len(s.notifier.sent) != 1 || s.notifier.sent[0] != "Hi Alice! 👋" {
		t.Fatalf("expected one log and one greeting sent, got %+v %+v", s.repo.created, s.notifier.sent)
	}
}

func TestWebhookReceive_BotSender(t *testing.T) {
	s := setupRouter(t, service.DispatcherOptions{}, nil)

	rec := performRequest(s.router, http.MethodPost, "/", map[string]string{
		"sender_type": "bot",
		"name":        "GroupMe Bot",
		"text":        "Hi Alice! 👋",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if len(s.repo.created) != 0 || len(s.notifier.sent) != 0 {
		t.Fatalf("expected bot message to be ignored")
	}
}

func TestWebhookReceive_BotSenderWithoutText(t *testing.T) {
	s := setupRouter(t, service.DispatcherOptions{}, nil)

	rec := performRequest(s.router, http.MethodPost, "/", map[string]string{
		"sender_type": "bot",
		"name":        "GroupMe Bot",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ignored" {
		t.Fatalf("expected ignored status, got %v", body)
	}
	if len(s.repo.created) != 0 || len(s.notifier.sent) != 0 {
		t.Fatalf("expected bot message to be ignored")
	}
}

func TestWebhookReceive_MentionRequiredAndAbsent(t *testing.T) {
	s := setupRouter(t, service.DispatcherOptions{MentionToken: "@bot", MentionRequired: true}, nil)

	rec := performRequest(s.router, http.MethodPost, "/", map[string]string{
		"sender_type": "user",
		"name":        "Alice",
		"text":        "what time is it",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if len(s.repo.created) != 0 || len(s.notifier.sent) != 0 {
		t.Fatalf("expected no log and no send")
	}
}

func TestWebhookReceive_EmptyTextIsValid(t *testing.T) {
	s := setupRouter(t, service.DispatcherOptions{}, nil)

	rec := performRequest(s.router, http.MethodPost, "/", map[string]string{
		"sender_type": "user",
		"name":        "Carol",
		"text":        "",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if len(s.notifier.sent) != 1 || s.notifier.sent[0] != service.UsageReply {
		t.Fatalf("expected usage reply, got %+v", s.notifier.sent)
	}
}

func TestWebhookReceive_MissingText(t *testing.T) {
	s := setupRouter(t, service.DispatcherOptions{}, nil)

	rec := performRequest(s.router, http.MethodPost, "/", map[string]string{
		"sender_type": "user",
		"name":        "Carol",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if len(s.repo.created) != 0 || len(s.notifier.sent) != 0 {
		t.Fatalf("expected malformed payload to have no side effects")
	}
}

func TestWebhookReceive_LogFailure(t *testing.T) {
	s := setupRouter(t, service.DispatcherOptions{}, nil)
	s.repo.createErr = errors.New("disk I/O error")

	rec := performRequest(s.router, http.MethodPost, "/", map[string]string{
		"sender_type": "user",
		"name":        "Carol",
		"text":        "random question",
	})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if len(s.notifier.sent) != 0 {
		t.Fatalf("expected no send after log failure")
	}
}
