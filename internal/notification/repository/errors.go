package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert notifications")
	ErrFailedToGet    = errors.New("failed to get notification")
	ErrFailedToUpdate = errors.New("failed to update notification")
	ErrFailedToDelete = errors.New("failed to delete notification")
)
