package postgre

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"study-assistant/internal/course/repository"
	"study-assistant/pkg/log"
)

type implRepository struct {
	db *pgxpool.Pool
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the course domain.
func New(db *pgxpool.Pool, l log.Logger) repository.Repository {
	if db == nil {
		panic("course/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}
