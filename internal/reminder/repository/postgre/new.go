package postgre

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"study-assistant/internal/reminder/repository"
	"study-assistant/pkg/log"
)

type implRepository struct {
	db *pgxpool.Pool
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the reminder domain.
//
// Expected schema: reminders(id, user_id, target_kind, target_id, title,
// remind_at, channel, status, is_sent, sent_at, created_at, updated_at) with a
// unique index on (user_id, target_kind, target_id, remind_at, channel).
func New(db *pgxpool.Pool, l log.Logger) repository.Repository {
	if db == nil {
		panic("reminder/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}
