package chat

import (
	"time"

	"study-assistant/internal/model"
)

// ReplyKind discriminates what one chat turn produced.
type ReplyKind string

const (
	ReplyCreated     ReplyKind = "created"
	ReplyMissingInfo ReplyKind = "missing_info"
	ReplyFollowUp    ReplyKind = "follow_up"
	ReplyFound       ReplyKind = "found"
	ReplyUnknown     ReplyKind = "unknown"
	ReplyFailed      ReplyKind = "failed"
)

// Reply is the user-facing outcome of one chat turn.
type Reply struct {
	Kind    ReplyKind
	Intent  string
	Message string

	// MissingSlots names the required fields the message did not carry.
	// Only set for ReplyMissingInfo.
	MissingSlots []string

	// Creation echoes, set for ReplyCreated depending on intent.
	Task      *model.Task
	Schedule  *model.Schedule
	Reminders int

	// Schedules carries find_event results for ReplyFound.
	Schedules []model.Schedule
}

// PendingAction is a dispatch that stopped at the channel follow-up question.
// The next turn merges the channel selection into Entities and re-enters
// dispatch directly, skipping re-classification.
type PendingAction struct {
	Intent    string
	Entities  model.Entities
	CreatedAt time.Time
}
