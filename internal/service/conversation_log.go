package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"groupme-bot/internal/domain"
	"groupme-bot/internal/repository"
)

const (
	defaultRecentLimit = 50
	maxRecentLimit     = 200
)

var (
	ErrConversationLogNotConfigured = errors.New("conversation log not configured")
	ErrConversationLogInvalid       = errors.New("conversation log invalid entry")
	ErrConversationLogWrite         = errors.New("conversation log write failed")
)

// ConversationLog encapsula el registro append-only de intercambios.
type ConversationLog struct {
	repo repository.ConversationLogRepository
	now  func() time.Time
}

func NewConversationLog(repo repository.ConversationLogRepository) *ConversationLog {
	return &ConversationLog{repo: repo, now: time.Now}
}

// Record normaliza y persiste la entrada. Un fallo de storage se devuelve envuelto en ErrConversationLogWrite.
func (s *ConversationLog) Record(ctx context.Context, entry domain.ConversationLogEntry) (domain.ConversationLogEntry, error) {
	if s == nil || s.repo == nil {
		return entry, ErrConversationLogNotConfigured
	}

	entry.User = strings.TrimSpace(entry.User)
	entry.Message = strings.TrimSpace(entry.Message)
	entry.Reply = strings.TrimSpace(entry.Reply)

	if entry.Reply == "" {
		return entry, ErrConversationLogInvalid
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().UTC()
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return entry, fmt.Errorf("%w: %v", ErrConversationLogWrite, err)
	}
	return entry, nil
}

// Recent lista las últimas entradas, más nuevas primero.
func (s *ConversationLog) Recent(ctx context.Context, limit int) ([]domain.ConversationLogEntry, error) {
	if s == nil || s.repo == nil {
		return nil, ErrConversationLogNotConfigured
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	entries, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent logs: %w", err)
	}
	if entries == nil {
		entries = []domain.ConversationLogEntry{}
	}
	return entries, nil
}
