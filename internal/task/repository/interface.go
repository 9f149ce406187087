package repository

import (
	"context"

	"study-assistant/internal/model"
)

// Repository defines data access for the task domain.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
}
