package http

import (
	"study-assistant/internal/chat"
	"study-assistant/internal/model"
	"study-assistant/pkg/response"
)

// --- Request DTOs ---

type chatReq struct {
	UserID  string `json:"user_id" binding:"required"`
	Message string `json:"message" binding:"required,min=1,max=1000"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toScope() model.Scope {
	return model.Scope{UserID: r.UserID}
}

// --- Response DTOs ---

type taskResp struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Type     string            `json:"type"`
	DueAt    response.DateTime `json:"due_at"`
	CourseID string            `json:"course_id,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:       t.ID,
		Title:    t.Title,
		Type:     string(t.Type),
		DueAt:    response.DateTime(t.DueAt),
		CourseID: t.CourseID,
	}
}

type scheduleResp struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Type         string             `json:"type"`
	StartAt      response.DateTime  `json:"start_at"`
	EndAt        *response.DateTime `json:"end_at,omitempty"`
	Location     string             `json:"location,omitempty"`
	CourseID     string             `json:"course_id,omitempty"`
	CalendarLink string             `json:"calendar_link,omitempty"`
}

func newScheduleResp(s model.Schedule) scheduleResp {
	resp := scheduleResp{
		ID:           s.ID,
		Title:        s.Title,
		Type:         string(s.Type),
		StartAt:      response.DateTime(s.StartAt),
		Location:     s.Location,
		CourseID:     s.CourseID,
		CalendarLink: s.CalendarLink,
	}
	if s.EndAt != nil {
		end := response.DateTime(*s.EndAt)
		resp.EndAt = &end
	}
	return resp
}

type chatResp struct {
	Kind         string         `json:"kind"`
	Intent       string         `json:"intent,omitempty"`
	Message      string         `json:"message"`
	MissingSlots []string       `json:"missing_slots,omitempty"`
	Reminders    int            `json:"reminders,omitempty"`
	Task         *taskResp      `json:"task,omitempty"`
	Schedule     *scheduleResp  `json:"schedule,omitempty"`
	Schedules    []scheduleResp `json:"schedules,omitempty"`
}

func (h *handler) newChatResp(reply chat.Reply) chatResp {
	resp := chatResp{
		Kind:         string(reply.Kind),
		Intent:       reply.Intent,
		Message:      reply.Message,
		MissingSlots: reply.MissingSlots,
		Reminders:    reply.Reminders,
	}
	if reply.Task != nil {
		t := newTaskResp(*reply.Task)
		resp.Task = &t
	}
	if reply.Schedule != nil {
		s := newScheduleResp(*reply.Schedule)
		resp.Schedule = &s
	}
	if len(reply.Schedules) > 0 {
		resp.Schedules = make([]scheduleResp, len(reply.Schedules))
		for i, s := range reply.Schedules {
			resp.Schedules[i] = newScheduleResp(s)
		}
	}
	return resp
}
