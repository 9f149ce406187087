package task

import (
	"context"

	"study-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// CreateFromEntities persists a task built from extracted chat slots.
	// courseID may be empty when no course phrase resolved.
	CreateFromEntities(ctx context.Context, sc model.Scope, ent model.Entities, courseID string) (model.Task, error)
}
