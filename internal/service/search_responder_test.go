package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"groupme-bot/internal/domain"
	"groupme-bot/internal/search"
)

func TestSearchResponder_NotConfigured(t *testing.T) {
	r := NewSearchResponder(nil, time.Second, zap.NewNop())

	reply := r.Search(context.Background(), "cats")
	if reply.Kind != domain.ReplyNotConfigured {
		t.Fatalf("expected not configured, got %+v", reply)
	}
	if got := reply.Render(searchFallbacks); got != "🔍 Google search not configured." {
		t.Fatalf("unexpected fallback %q", got)
	}
}

func TestSearchResponder_FirstResult(t *testing.T) {
	client := &mockSearchClient{result: search.Result{Title: "Cats", Link: "https://example.com/cats"}, found: true}
	r := NewSearchResponder(client, time.Second, zap.NewNop())

	reply := r.Search(context.Background(), "cats")
	if !reply.OK() || reply.Text != "Cats: https://example.com/cats" {
		t.Fatalf("unexpected reply %+v", reply)
	}
	if client.calls != 1 || client.lastQuery != "cats" {
		t.Fatalf("expected one call with query cats, got %d %q", client.calls, client.lastQuery)
	}
	if !client.deadline {
		t.Fatalf("expected the provider call to be time-bounded")
	}
}

func TestSearchResponder_NoResults(t *testing.T) {
	r := NewSearchResponder(&mockSearchClient{found: false}, time.Second, zap.NewNop())

	reply := r.Search(context.Background(), "zzzz")
	if reply.Kind != domain.ReplyNoResults {
		t.Fatalf("expected no results, got %+v", reply)
	}
	if got := reply.Render(searchFallbacks); got != SearchNoResultsReply {
		t.Fatalf("unexpected fallback %q", got)
	}
}

func TestSearchResponder_ProviderError(t *testing.T) {
	providerErr := errors.New("quota exceeded")
	r := NewSearchResponder(&mockSearchClient{err: providerErr}, time.Second, zap.NewNop())

	reply := r.Search(context.Background(), "cats")
	if reply.Kind != domain.ReplyProviderError || !errors.Is(reply.Cause, providerErr) {
		t.Fatalf("expected provider error with cause, got %+v", reply)
	}
	if got := reply.Render(searchFallbacks); got != SearchErrorReply {
		t.Fatalf("unexpected fallback %q", got)
	}
}
