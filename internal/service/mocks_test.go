package service

import (
	"context"
	"sync"

	"groupme-bot/internal/domain"
	"groupme-bot/internal/search"
)

type mockLogRepo struct {
	mu        sync.Mutex
	created   []domain.ConversationLogEntry
	createErr error
	listData  []domain.ConversationLogEntry
	listErr   error
	lastLimit int
	events    *[]string
}

func (m *mockLogRepo) Create(_ context.Context, entry domain.ConversationLogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.events != nil {
		*m.events = append(*m.events, "log")
	}
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
	sent   []string
	events *[]string
}

func (m *mockNotifier) Send(_ context.Context, text string) {
	if m.events != nil {
		*m.events = append(*m.events, "send")
	}
	m.sent = append(m.sent, text)
}

type mockSearchClient struct {
	result    search.Result
	found     bool
	err       error
	calls     int
	lastQuery string
	deadline  bool
}

func (m *mockSearchClient) TopResult(ctx context.Context, query string) (search.Result, bool, error) {
	m.calls++
	m.lastQuery = query
	_, m.deadline = ctx.Deadline()
	return m.result, m.found, m.err
}

type mockDeduper struct {
	seen      map[string]bool
	forgotten []string
}

func newMockDeduper() *mockDeduper {
	return &mockDeduper{seen: make(map[string]bool)}
}

func (m *mockDeduper) FirstDelivery(_ context.Context, id string) bool {
	if id == "" {
		return true
	}
	if m.seen[id] {
		return false
	}
	m.seen[id] = true
	return true
}

func (m *mockDeduper) Forget(_ context.Context, id string) {
	delete(m.seen, id)
	m.forgotten = append(m.forgotten, id)
}
