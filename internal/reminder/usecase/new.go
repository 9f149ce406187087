package usecase

import (
	notifrepo "study-assistant/internal/notification/repository"
	"study-assistant/internal/reminder/repository"
	"study-assistant/pkg/log"
)

// implUseCase is the private implementation of reminder.UseCase.
type implUseCase struct {
	repo      repository.Repository
	notifRepo notifrepo.Repository
	l         log.Logger
}

// New creates a new reminder UseCase implementation. notifRepo is needed by
// snooze, which must drop the materialized notification alongside the reset.
func New(repo repository.Repository, notifRepo notifrepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		notifRepo: notifRepo,
		l:         l,
	}
}
