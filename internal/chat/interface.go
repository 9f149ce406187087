package chat

import (
	"context"

	"study-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Handle runs one chat turn through the pipeline: classification,
	// extraction, slot validation and the matching creation or lookup action.
	Handle(ctx context.Context, sc model.Scope, message string) (Reply, error)
}
