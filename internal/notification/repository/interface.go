package repository

import (
	"context"

	"study-assistant/internal/model"
)

// Repository defines data access for the notification domain. The unique
// index on reminder_id is the idempotency boundary for the cron engine:
// inserting twice for the same reminder yields one row, once.
type Repository interface {
	// InsertNotifications bulk-inserts one notification per reminder and
	// returns only the rows that were newly created; rows swallowed by the
	// reminder_id unique index are absent from the result.
	InsertNotifications(ctx context.Context, opts []CreateNotificationOptions) ([]model.Notification, error)

	// MarkDelivery records the outcome of one delivery attempt.
	MarkDelivery(ctx context.Context, opt MarkDeliveryOptions) error

	// DeleteByReminderID removes the materialized notification for a
	// reminder, used by snooze so the next tick can re-fire.
	DeleteByReminderID(ctx context.Context, reminderID string) error

	// GetUserEmail resolves the delivery address for email notifications.
	// Returns "" when the user has no address on file.
	GetUserEmail(ctx context.Context, userID string) (string, error)
}
