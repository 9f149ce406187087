package repository

import (
	"time"

	"study-assistant/internal/model"
)

// CreateNotificationOptions holds one row of a notification bulk insert.
type CreateNotificationOptions struct {
	UserID     string
	ReminderID string
	Title      string
	FireAt     time.Time
	Channel    model.Channel
}

// MarkDeliveryOptions records a delivery attempt outcome.
type MarkDeliveryOptions struct {
	ID        string
	Status    model.DeliveryStatus
	LastError string
}
