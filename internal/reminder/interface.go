package reminder

import (
	"context"

	"study-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Build normalizes and persists reminders for one parent record.
	// Duplicate (remindAt, channel) pairs inside the batch collapse to one
	// record; collisions with already-persisted rows are silently dropped.
	Build(ctx context.Context, sc model.Scope, input BuildInput) (BuildOutput, error)

	// Snooze shifts a reminder forward by a duration token ("1h" or "1day"),
	// resets its sent markers and removes any materialized notification so
	// the next cron tick re-fires it.
	Snooze(ctx context.Context, sc model.Scope, reminderID, duration string) (model.Reminder, error)
}
