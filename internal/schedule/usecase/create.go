package usecase

import (
	"context"
	"time"

	"study-assistant/internal/model"
	"study-assistant/internal/schedule"
	repo "study-assistant/internal/schedule/repository"
	"study-assistant/pkg/gcalendar"
)

// defaultEventDuration is used when the message carried no end time.
const defaultEventDuration = time.Hour

// CreateFromEntities persists a calendar event from extracted slots and then
// tries to mirror it into the external calendar. Mirror failure is logged and
// swallowed, the local record is the source of truth.
func (uc *implUseCase) CreateFromEntities(ctx context.Context, sc model.Scope, ent model.Entities, courseID string) (model.Schedule, error) {
	if ent.Title == "" {
		return model.Schedule{}, schedule.ErrMissingTitle
	}
	startAt := ent.StartAt(uc.loc)
	if startAt.IsZero() {
		return model.Schedule{}, schedule.ErrMissingStartAt
	}

	var endAt *time.Time
	if len(ent.TimeEnd) == 5 {
		hour := int(ent.TimeEnd[0]-'0')*10 + int(ent.TimeEnd[1]-'0')
		minute := int(ent.TimeEnd[3]-'0')*10 + int(ent.TimeEnd[4]-'0')
		end := time.Date(startAt.Year(), startAt.Month(), startAt.Day(), hour, minute, 0, 0, uc.loc)
		if end.After(startAt) {
			endAt = &end
		}
	}

	created, err := uc.repo.CreateSchedule(ctx, repo.CreateScheduleOptions{
		UserID:   sc.UserID,
		Title:    ent.Title,
		Type:     ent.Type,
		StartAt:  startAt,
		EndAt:    endAt,
		Location: ent.Location,
		CourseID: courseID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateFromEntities CreateSchedule: %v", err)
		return model.Schedule{}, err
	}

	uc.tryMirrorCalendarEvent(ctx, &created)

	uc.l.Infof(ctx, "schedule created id=%s user=%s start=%s", created.ID, sc.UserID, created.StartAt.Format("2006-01-02 15:04"))
	return created, nil
}

// tryMirrorCalendarEvent creates the external calendar copy and stores its
// link on the schedule. Best effort only.
func (uc *implUseCase) tryMirrorCalendarEvent(ctx context.Context, s *model.Schedule) {
	if uc.calendar == nil {
		return
	}

	endTime := s.StartAt.Add(defaultEventDuration)
	if s.EndAt != nil {
		endTime = *s.EndAt
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: uc.calendarID,
		Summary:    s.Title,
		Location:   s.Location,
		StartTime:  s.StartAt,
		EndTime:    endTime,
		Timezone:   uc.loc.String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.tryMirrorCalendarEvent id=%s: %v", s.ID, err)
		return
	}

	if err := uc.repo.SetCalendarLink(ctx, s.ID, event.HtmlLink); err != nil {
		uc.l.Warnf(ctx, "uc.tryMirrorCalendarEvent SetCalendarLink id=%s: %v", s.ID, err)
		return
	}
	s.CalendarLink = event.HtmlLink
}
