package repository

import (
	"time"

	"study-assistant/internal/model"
)

// CreateReminderOptions holds one row of a reminder bulk insert.
type CreateReminderOptions struct {
	UserID   string
	Target   model.ReminderTarget
	Title    string
	RemindAt time.Time
	Channel  model.Channel
}

// GetOneReminderOptions holds filter parameters for fetching a single
// Reminder. All non-empty fields are applied as AND conditions.
type GetOneReminderOptions struct {
	ID     string
	UserID string
}

// SnoozeReminderOptions holds the snooze write parameters.
type SnoozeReminderOptions struct {
	ID       string
	RemindAt time.Time
}
