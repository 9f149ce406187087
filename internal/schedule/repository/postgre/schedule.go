package postgre

import (
	"context"
	"time"

	"github.com/google/uuid"

	"study-assistant/internal/model"
	repo "study-assistant/internal/schedule/repository"
)

const scheduleColumns = `id, user_id, title, type, start_at, end_at,
	COALESCE(location, ''), COALESCE(course_id, ''), COALESCE(calendar_link, ''),
	created_at, updated_at`

// CreateSchedule inserts a new Schedule row and returns the created entity.
func (r *implRepository) CreateSchedule(ctx context.Context, opt repo.CreateScheduleOptions) (model.Schedule, error) {
	const query = `
		INSERT INTO schedules (id, user_id, title, type, start_at, end_at, location, course_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + scheduleColumns

	var s model.Schedule
	err := r.db.QueryRow(ctx, query,
		uuid.NewString(), opt.UserID, opt.Title, opt.Type, opt.StartAt, opt.EndAt,
		nullable(opt.Location), nullable(opt.CourseID),
	).Scan(
		&s.ID, &s.UserID, &s.Title, &s.Type, &s.StartAt, &s.EndAt,
		&s.Location, &s.CourseID, &s.CalendarLink, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "schedule/repository/postgre.CreateSchedule: %v", err)
		return model.Schedule{}, repo.ErrFailedToInsert
	}
	return s, nil
}

// ListSchedulesBetween returns the user's events with start_at in [from, to).
func (r *implRepository) ListSchedulesBetween(ctx context.Context, userID string, from, to time.Time) ([]model.Schedule, error) {
	const query = `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE user_id = $1 AND start_at >= $2 AND start_at < $3
		ORDER BY start_at`

	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		r.l.Errorf(ctx, "schedule/repository/postgre.ListSchedulesBetween: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var schedules []model.Schedule
	for rows.Next() {
		var s model.Schedule
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Title, &s.Type, &s.StartAt, &s.EndAt,
			&s.Location, &s.CourseID, &s.CalendarLink, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, repo.ErrFailedToList
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// SetCalendarLink records the external calendar mirror URL after creation.
func (r *implRepository) SetCalendarLink(ctx context.Context, id, link string) error {
	const query = `UPDATE schedules SET calendar_link = $1, updated_at = NOW() WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, link, id); err != nil {
		r.l.Errorf(ctx, "schedule/repository/postgre.SetCalendarLink: %v", err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
