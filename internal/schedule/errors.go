package schedule

import "errors"

var (
	ErrMissingTitle   = errors.New("schedule title is required")
	ErrMissingStartAt = errors.New("schedule start time is required")
)
