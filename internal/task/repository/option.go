package repository

import (
	"time"

	"study-assistant/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID   string
	Title    string
	Type     model.EventType
	DueAt    time.Time
	CourseID string
}
