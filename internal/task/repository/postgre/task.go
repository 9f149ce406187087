package postgre

import (
	"context"

	"github.com/google/uuid"

	"study-assistant/internal/model"
	repo "study-assistant/internal/task/repository"
)

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, user_id, title, type, due_at, course_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, user_id, title, type, due_at, COALESCE(course_id, ''), created_at, updated_at`

	var t model.Task
	err := r.db.QueryRow(ctx, query,
		uuid.NewString(), opt.UserID, opt.Title, opt.Type, opt.DueAt, nullable(opt.CourseID),
	).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Type, &t.DueAt, &t.CourseID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.CreateTask: %v", err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}
