package task

import "errors"

var (
	ErrMissingTitle = errors.New("task title is required")
	ErrMissingDueAt = errors.New("task due date is required")
)
