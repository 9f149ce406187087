package reminder

import "errors"

var (
	ErrInvalidTarget         = errors.New("reminder target must name exactly one parent")
	ErrInvalidChannel        = errors.New("unknown reminder channel")
	ErrReminderNotFound      = errors.New("reminder not found")
	ErrInvalidSnoozeDuration = errors.New("snooze duration must be 1h or 1day")
)
