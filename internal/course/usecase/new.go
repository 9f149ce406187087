package usecase

import (
	"study-assistant/internal/course/repository"
	"study-assistant/pkg/log"
)

// implUseCase is the private implementation of course.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new course UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
