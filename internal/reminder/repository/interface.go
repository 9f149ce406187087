package repository

import (
	"context"
	"time"

	"study-assistant/internal/model"
)

// Repository defines data access for the reminder domain. All lifecycle
// writes (creation, snooze, cron advancement) go through here.
type Repository interface {
	// BulkInsertReminders inserts the batch unordered; rows colliding with
	// the (user, target, remind_at, channel) unique index are dropped
	// silently. Returns the number of rows actually inserted.
	BulkInsertReminders(ctx context.Context, opts []CreateReminderOptions) (int, error)

	// GetOneReminder returns the zero Reminder when nothing matches.
	GetOneReminder(ctx context.Context, opt GetOneReminderOptions) (model.Reminder, error)

	// SnoozeReminder moves remind_at and resets status/sent markers.
	SnoozeReminder(ctx context.Context, opt SnoozeReminderOptions) (model.Reminder, error)

	// ListDueReminders returns up to limit pending, unsent reminders with
	// remind_at <= now, oldest first.
	ListDueReminders(ctx context.Context, now time.Time, limit int) ([]model.Reminder, error)

	// MarkRemindersDone flips the given reminders to done/sent.
	MarkRemindersDone(ctx context.Context, ids []string, sentAt time.Time) error

	// MarkRemindersOverdue flips pending unsent reminders whose remind_at is
	// older than cutoff to overdue. Returns the number of rows affected.
	MarkRemindersOverdue(ctx context.Context, cutoff time.Time) (int, error)
}
