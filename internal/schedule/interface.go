package schedule

import (
	"context"
	"time"

	"study-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// CreateFromEntities persists a calendar event built from extracted chat
	// slots, mirroring it into the external calendar when one is configured.
	CreateFromEntities(ctx context.Context, sc model.Scope, ent model.Entities, courseID string) (model.Schedule, error)

	// Find returns the user's events inside [from, to).
	Find(ctx context.Context, sc model.Scope, from, to time.Time) ([]model.Schedule, error)
}
