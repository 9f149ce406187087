package course

import (
	"context"

	"study-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Resolve matches a free-text course phrase against the user's courses.
	// Returns the zero Course when nothing matches; resolution failure is
	// never fatal to the caller.
	Resolve(ctx context.Context, sc model.Scope, ref string) (model.Course, error)
}
