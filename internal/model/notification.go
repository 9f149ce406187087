package model

import "time"

// DeliveryStatus is the delivery state of a notification.
type DeliveryStatus string

const (
	DeliveryStatusPending DeliveryStatus = "pending"
	DeliveryStatusSent    DeliveryStatus = "sent"
	DeliveryStatusFailed  DeliveryStatus = "failed"
)

// Notification is the durable delivery record derived from a due Reminder.
// At most one notification exists per reminder (unique index on ReminderID);
// that uniqueness is the idempotency boundary for the cron engine.
type Notification struct {
	ID             string
	UserID         string
	ReminderID     string
	Title          string
	FireAt         time.Time
	Channel        Channel
	DeliveryStatus DeliveryStatus
	DeliveredAt    *time.Time
	LastError      string

	CreatedAt time.Time
}
