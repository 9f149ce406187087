package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert reminders")
	ErrFailedToGet    = errors.New("failed to get reminder")
	ErrFailedToList   = errors.New("failed to list reminders")
	ErrFailedToUpdate = errors.New("failed to update reminders")
)
