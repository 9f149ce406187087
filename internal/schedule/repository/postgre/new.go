package postgre

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"study-assistant/internal/schedule/repository"
	"study-assistant/pkg/log"
)

type implRepository struct {
	db *pgxpool.Pool
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the schedule domain.
func New(db *pgxpool.Pool, l log.Logger) repository.Repository {
	if db == nil {
		panic("schedule/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
