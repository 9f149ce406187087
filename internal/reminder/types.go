package reminder

import (
	"time"

	"study-assistant/internal/model"
)

// Offset is one reminder request relative to the parent's base time.
// Seconds is negative for "before the event". An empty Channel means the user
// did not pick one and defaults to in-app.
type Offset struct {
	Seconds int
	Channel model.Channel
}

// BuildInput is the batch of reminders to materialize for one parent.
type BuildInput struct {
	Target  model.ReminderTarget
	Title   string
	BaseAt  time.Time
	Offsets []Offset
}

// BuildOutput reports how many reminders the batch actually persisted. Created
// may be lower than the request size because of in-batch dedupe and unique
// index collisions.
type BuildOutput struct {
	Requested int
	Created   int
}
