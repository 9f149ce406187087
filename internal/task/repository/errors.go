package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert task")
)
