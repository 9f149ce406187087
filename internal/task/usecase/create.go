package usecase

import (
	"context"

	"study-assistant/internal/model"
	"study-assistant/internal/task"
	repo "study-assistant/internal/task/repository"
)

// CreateFromEntities persists a task from extracted slots. The dispatcher has
// already collected the required slots, so missing ones here are programmer
// errors surfaced as sentinels.
func (uc *implUseCase) CreateFromEntities(ctx context.Context, sc model.Scope, ent model.Entities, courseID string) (model.Task, error) {
	if ent.Title == "" {
		return model.Task{}, task.ErrMissingTitle
	}
	dueAt := ent.StartAt(uc.loc)
	if dueAt.IsZero() {
		return model.Task{}, task.ErrMissingDueAt
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:   sc.UserID,
		Title:    ent.Title,
		Type:     ent.Type,
		DueAt:    dueAt,
		CourseID: courseID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateFromEntities CreateTask: %v", err)
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "task created id=%s user=%s due=%s", created.ID, sc.UserID, created.DueAt.Format("2006-01-02 15:04"))
	return created, nil
}
