package usecase

import (
	"context"
	"time"

	"study-assistant/internal/schedule/repository"
	"study-assistant/pkg/gcalendar"
	"study-assistant/pkg/log"
)

// CalendarClient is the part of the external calendar API the schedule
// usecase needs. Nil means mirroring is disabled.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of schedule.UseCase.
type implUseCase struct {
	repo       repository.Repository
	calendar   CalendarClient
	calendarID string
	loc        *time.Location
	l          log.Logger
}

// New creates a new schedule UseCase implementation. calendar may be nil when
// no external mirror is configured.
func New(repo repository.Repository, calendar CalendarClient, calendarID string, loc *time.Location, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		loc:        loc,
		l:          l,
	}
}
