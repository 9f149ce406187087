package postgre

import (
	"context"

	"study-assistant/internal/course/repository"
	"study-assistant/internal/model"
)

// ListCoursesByUser returns every course registered for the user.
func (r *implRepository) ListCoursesByUser(ctx context.Context, userID string) ([]model.Course, error) {
	const query = `
		SELECT id, user_id, name, code
		FROM courses
		WHERE user_id = $1
		ORDER BY name`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "course/repository/postgre.ListCoursesByUser: %v", err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Code); err != nil {
			return nil, repository.ErrFailedToList
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
