package http

import (
	"study-assistant/internal/model"
	"study-assistant/pkg/response"
)

// --- Request DTOs ---

type snoozeReq struct {
	ID       string `json:"-"` // populated from URI param
	UserID   string `json:"user_id"  binding:"required"`
	Duration string `json:"duration" binding:"required,oneof=1h 1day"`
}

func (r snoozeReq) validate() error { return nil }

func (r snoozeReq) toScope() model.Scope {
	return model.Scope{UserID: r.UserID}
}

// --- Response DTOs ---

type reminderResp struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Target   string            `json:"target"`
	TargetID string            `json:"target_id"`
	RemindAt response.DateTime `json:"remind_at"`
	Channel  string            `json:"channel"`
	Status   string            `json:"status"`
}

func newReminderResp(r model.Reminder) reminderResp {
	return reminderResp{
		ID:       r.ID,
		Title:    r.Title,
		Target:   string(r.Target.Kind),
		TargetID: r.Target.ID,
		RemindAt: response.DateTime(r.RemindAt),
		Channel:  string(r.Channel),
		Status:   string(r.Status),
	}
}

type snoozeResp struct {
	Reminder reminderResp `json:"reminder"`
}

func (h *handler) newSnoozeResp(r model.Reminder) snoozeResp {
	return snoozeResp{Reminder: newReminderResp(r)}
}
