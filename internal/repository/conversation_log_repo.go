package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"groupme-bot/internal/domain"
)

// ConversationLogRepository define el contrato de persistencia del log de conversaciones.
type ConversationLogRepository interface {
	Create(ctx context.Context, entry domain.ConversationLogEntry) error
	ListRecent(ctx context.Context, limit int) ([]domain.ConversationLogEntry, error)
}

// PgConversationLogRepository implementa ConversationLogRepository usando pgxpool.
type PgConversationLogRepository struct {
	pool *pgxpool.Pool
}

func NewPgConversationLogRepository(pool *pgxpool.Pool) *PgConversationLogRepository {
	return &PgConversationLogRepository{pool: pool}
}

func (r *PgConversationLogRepository) Create(ctx context.Context, entry domain.ConversationLogEntry) error {
	const query = `
		INSERT INTO chat_logs (id, user_name, message, reply, logged_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.User,
		entry.Message,
		entry.Reply,
		entry.Timestamp,
	)
	return err
}

func (r *PgConversationLogRepository) ListRecent(ctx context.Context, limit int) ([]domain.ConversationLogEntry, error) {
	const query = `
		SELECT id, user_name, message, reply, logged_at
		FROM chat_logs
		ORDER BY logged_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.ConversationLogEntry, 0, limit)
	for rows.Next() {
		var e domain.ConversationLogEntry
		if err := rows.Scan(&e.ID, &e.User, &e.Message, &e.Reply, &e.Timestamp); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
