package usecase

import (
	"context"
	"strings"

	"study-assistant/internal/model"
	"study-assistant/pkg/vntext"
)

// Resolve matches a course phrase from chat against the user's courses using
// diacritic-folded comparison. Exact name wins, then course code, then a
// prefix match. No match returns the zero Course without error.
func (uc *implUseCase) Resolve(ctx context.Context, sc model.Scope, ref string) (model.Course, error) {
	ref = vntext.Normalize(ref)
	if ref == "" {
		return model.Course{}, nil
	}

	courses, err := uc.repo.ListCoursesByUser(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Resolve ListCoursesByUser: %v", err)
		return model.Course{}, err
	}

	var prefixHit model.Course
	for _, c := range courses {
		name := vntext.Normalize(c.Name)
		if name == ref || strings.EqualFold(c.Code, ref) {
			return c, nil
		}
		if prefixHit.ID == "" && strings.HasPrefix(name, ref) {
			prefixHit = c
		}
	}
	return prefixHit, nil
}
