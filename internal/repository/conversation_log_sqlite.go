package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"groupme-bot/internal/domain"
)

// SQLiteConversationLogRepository implementa ConversationLogRepository sobre sqlx.
type SQLiteConversationLogRepository struct {
	db *sqlx.DB
}

func NewSQLiteConversationLogRepository(db *sqlx.DB) *SQLiteConversationLogRepository {
	return &SQLiteConversationLogRepository{db: db}
}

func (r *SQLiteConversationLogRepository) Create(ctx context.Context, entry domain.ConversationLogEntry) error {
	const query = `
		INSERT INTO chat_logs (id, user_name, message, reply, logged_at)
		VALUES (:id, :user_name, :message, :reply, :logged_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, entry)
	return err
}

func (r *SQLiteConversationLogRepository) ListRecent(ctx context.Context, limit int) ([]domain.ConversationLogEntry, error) {
	const query = `
		SELECT id, user_name, message, reply, logged_at
		FROM chat_logs
		ORDER BY logged_at DESC
		LIMIT ?
	`
	entries := []domain.ConversationLogEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, err
	}
	return entries, nil
}
