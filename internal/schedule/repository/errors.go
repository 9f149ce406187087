package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert schedule")
	ErrFailedToList   = errors.New("failed to list schedules")
	ErrFailedToUpdate = errors.New("failed to update schedule")
)
