package model

import "time"

// ReminderStatus is the lifecycle state of a reminder.
type ReminderStatus string

const (
	ReminderStatusPending ReminderStatus = "pending"
	ReminderStatusDone    ReminderStatus = "done"
	ReminderStatusOverdue ReminderStatus = "overdue"
)

// TargetKind discriminates which parent a reminder points at.
type TargetKind string

const (
	TargetTask     TargetKind = "task"
	TargetSchedule TargetKind = "schedule"
)

// ReminderTarget is the tagged reference to a reminder's parent record.
// Exactly one parent kind is allowed; the pair is validated at creation.
type ReminderTarget struct {
	Kind TargetKind
	ID   string
}

// Valid reports whether the target names exactly one known parent.
func (t ReminderTarget) Valid() bool {
	return t.ID != "" && (t.Kind == TargetTask || t.Kind == TargetSchedule)
}

// Reminder is a scheduled point-in-time record that, once due, produces a
// Notification. Unique on (user, target, remind_at, channel).
type Reminder struct {
	ID       string
	UserID   string
	Target   ReminderTarget
	Title    string
	RemindAt time.Time
	Channel  Channel
	Status   ReminderStatus
	IsSent   bool
	SentAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
