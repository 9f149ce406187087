package usecase

import (
	"context"
	"time"

	"study-assistant/internal/chat"
	"study-assistant/internal/course"
	"study-assistant/internal/intent"
	"study-assistant/internal/model"
	"study-assistant/internal/reminder"
	"study-assistant/internal/schedule"
	"study-assistant/internal/task"
	"study-assistant/pkg/log"
)

// IntentResolver produces the final canonical intent for a message.
type IntentResolver interface {
	Resolve(ctx context.Context, text string) intent.Result
}

// Extractor pulls structured slots out of a message.
type Extractor interface {
	Extract(ctx context.Context, text string, now time.Time) model.Entities
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	resolver  IntentResolver
	extractor Extractor
	courses   course.UseCase
	tasks     task.UseCase
	schedules schedule.UseCase
	reminders reminder.UseCase
	pending   *chat.PendingStore
	loc       *time.Location
	l         log.Logger

	now func() time.Time
}

// New creates a new chat UseCase implementation.
func New(
	resolver IntentResolver,
	extractor Extractor,
	courses course.UseCase,
	tasks task.UseCase,
	schedules schedule.UseCase,
	reminders reminder.UseCase,
	pending *chat.PendingStore,
	loc *time.Location,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		resolver:  resolver,
		extractor: extractor,
		courses:   courses,
		tasks:     tasks,
		schedules: schedules,
		reminders: reminders,
		pending:   pending,
		loc:       loc,
		l:         l,
		now:       time.Now,
	}
}
