package repository

import (
	"context"

	"study-assistant/internal/model"
)

// Repository defines data access for the course domain.
type Repository interface {
	ListCoursesByUser(ctx context.Context, userID string) ([]model.Course, error)
}
