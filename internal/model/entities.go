package model

import "time"

// EventType classifies what kind of calendar/task item an utterance is about.
type EventType string

const (
	EventTypeExam       EventType = "exam"
	EventTypeAssignment EventType = "assignment"
	EventTypeLecture    EventType = "lecture"
	EventTypeOther      EventType = "other"
)

// Channel is the delivery medium for a reminder notification.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelInApp Channel = "in_app"
)

// Valid reports whether c is a known channel.
func (c Channel) Valid() bool {
	return c == ChannelEmail || c == ChannelInApp
}

// Entities holds the slots extracted from one chat message. Fields may be
// empty: the dispatcher decides per intent which slots are required and
// whether a follow-up turn is needed.
type Entities struct {
	Title     string
	Type      EventType
	Date      *time.Time // start of day in the configured timezone
	TimeStart string     // "HH:MM"
	TimeEnd   string     // "HH:MM", optional
	Location  string
	CourseRef string // raw course phrase, resolved later against the user's courses

	// ReminderOffsets are seconds relative to the event start; negative means
	// before the event.
	ReminderOffsets []int
	ReminderChannel Channel // empty until the user picks one
}

// StartAt combines Date and TimeStart into an absolute time in loc.
// Returns the zero time when Date is missing.
func (e Entities) StartAt(loc *time.Location) time.Time {
	if e.Date == nil {
		return time.Time{}
	}
	day := e.Date.In(loc)
	hour, minute := 0, 0
	if len(e.TimeStart) == 5 {
		hour = int(e.TimeStart[0]-'0')*10 + int(e.TimeStart[1]-'0')
		minute = int(e.TimeStart[3]-'0')*10 + int(e.TimeStart[4]-'0')
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
}
