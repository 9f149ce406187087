package usecase

import (
	"context"
	"time"

	"study-assistant/internal/model"
)

// Find returns the user's events inside [from, to).
func (uc *implUseCase) Find(ctx context.Context, sc model.Scope, from, to time.Time) ([]model.Schedule, error) {
	schedules, err := uc.repo.ListSchedulesBetween(ctx, sc.UserID, from, to)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Find ListSchedulesBetween: %v", err)
		return nil, err
	}
	return schedules, nil
}
