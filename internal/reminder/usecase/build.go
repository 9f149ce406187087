package usecase

import (
	"context"
	"time"

	"study-assistant/internal/model"
	"study-assistant/internal/reminder"
	repo "study-assistant/internal/reminder/repository"
)

// Build normalizes the offset batch and bulk-inserts it. Channel defaults to
// in-app per offset; duplicate (remindAt, channel) pairs inside the batch
// collapse before the insert, and cross-batch duplicates are dropped by the
// unique index. Partial success is expected and not an error.
func (uc *implUseCase) Build(ctx context.Context, sc model.Scope, input reminder.BuildInput) (reminder.BuildOutput, error) {
	if !input.Target.Valid() {
		return reminder.BuildOutput{}, reminder.ErrInvalidTarget
	}

	type slot struct {
		remindAt time.Time
		channel  model.Channel
	}
	seen := make(map[slot]bool, len(input.Offsets))

	var opts []repo.CreateReminderOptions
	for _, off := range input.Offsets {
		channel := off.Channel
		if channel == "" {
			channel = model.ChannelInApp
		}
		if !channel.Valid() {
			return reminder.BuildOutput{}, reminder.ErrInvalidChannel
		}

		s := slot{
			remindAt: input.BaseAt.Add(time.Duration(off.Seconds) * time.Second),
			channel:  channel,
		}
		if seen[s] {
			continue
		}
		seen[s] = true

		opts = append(opts, repo.CreateReminderOptions{
			UserID:   sc.UserID,
			Target:   input.Target,
			Title:    input.Title,
			RemindAt: s.remindAt,
			Channel:  channel,
		})
	}

	created, err := uc.repo.BulkInsertReminders(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Build BulkInsertReminders: %v", err)
		return reminder.BuildOutput{}, err
	}

	uc.l.Infof(ctx, "reminders built user=%s target=%s/%s requested=%d created=%d",
		sc.UserID, input.Target.Kind, input.Target.ID, len(input.Offsets), created)
	return reminder.BuildOutput{Requested: len(input.Offsets), Created: created}, nil
}
