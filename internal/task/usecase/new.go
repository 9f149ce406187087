package usecase

import (
	"time"

	"study-assistant/internal/task/repository"
	"study-assistant/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo repository.Repository
	loc  *time.Location
	l    log.Logger
}

// New creates a new task UseCase implementation. loc is the timezone chat
// dates are interpreted in.
func New(repo repository.Repository, loc *time.Location, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		loc:  loc,
		l:    l,
	}
}
