package repository

import "errors"

var (
	ErrFailedToList = errors.New("failed to list courses")
)
