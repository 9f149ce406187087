package usecase

import (
	"context"
	"time"

	"study-assistant/internal/model"
	"study-assistant/internal/reminder"
	repo "study-assistant/internal/reminder/repository"
)

// snoozeDurations are the accepted duration tokens.
var snoozeDurations = map[string]time.Duration{
	"1h":   time.Hour,
	"1day": 24 * time.Hour,
}

// Snooze shifts the reminder forward, resets its sent markers and deletes the
// materialized notification so the next cron tick re-fires it cleanly.
func (uc *implUseCase) Snooze(ctx context.Context, sc model.Scope, reminderID, duration string) (model.Reminder, error) {
	d, ok := snoozeDurations[duration]
	if !ok {
		return model.Reminder{}, reminder.ErrInvalidSnoozeDuration
	}

	existing, err := uc.repo.GetOneReminder(ctx, repo.GetOneReminderOptions{ID: reminderID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Snooze GetOneReminder: %v", err)
		return model.Reminder{}, err
	}
	if existing.ID == "" {
		return model.Reminder{}, reminder.ErrReminderNotFound
	}

	snoozed, err := uc.repo.SnoozeReminder(ctx, repo.SnoozeReminderOptions{
		ID:       existing.ID,
		RemindAt: existing.RemindAt.Add(d),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Snooze SnoozeReminder: %v", err)
		return model.Reminder{}, err
	}

	// Without this delete the reminder_id unique index would swallow the next
	// materialization and the reminder would never re-fire.
	if err := uc.notifRepo.DeleteByReminderID(ctx, existing.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Snooze DeleteByReminderID: %v", err)
		return model.Reminder{}, err
	}

	uc.l.Infof(ctx, "reminder snoozed id=%s user=%s until=%s", existing.ID, sc.UserID, snoozed.RemindAt.Format(time.RFC3339))
	return snoozed, nil
}
