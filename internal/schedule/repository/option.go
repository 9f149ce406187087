package repository

import (
	"time"

	"study-assistant/internal/model"
)

// CreateScheduleOptions holds parameters for inserting a new Schedule.
type CreateScheduleOptions struct {
	UserID   string
	Title    string
	Type     model.EventType
	StartAt  time.Time
	EndAt    *time.Time
	Location string
	CourseID string
}
