package repository

import (
	"context"
	"time"

	"study-assistant/internal/model"
)

// Repository defines data access for the schedule domain.
type Repository interface {
	CreateSchedule(ctx context.Context, opt CreateScheduleOptions) (model.Schedule, error)
	ListSchedulesBetween(ctx context.Context, userID string, from, to time.Time) ([]model.Schedule, error)
	SetCalendarLink(ctx context.Context, id, link string) error
}
