package postgre

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"study-assistant/internal/notification/repository"
	"study-assistant/pkg/log"
)

type implRepository struct {
	db *pgxpool.Pool
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the notification domain.
//
// Expected schema: notifications(id, user_id, reminder_id UNIQUE, title,
// fire_at, channel, delivery_status, delivered_at, last_error, created_at).
func New(db *pgxpool.Pool, l log.Logger) repository.Repository {
	if db == nil {
		panic("notification/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}
