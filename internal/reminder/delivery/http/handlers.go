package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"study-assistant/internal/reminder"
	"study-assistant/pkg/response"
)

// Snooze godoc
// @Summary     Snooze a reminder
// @Description Pushes a pending or overdue reminder back by 1h or 1day and re-arms it.
// @Tags        Reminder
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Reminder ID"
// @Param       body body snoozeReq true "Snooze duration"
// @Success     200 {object} snoozeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reminders/{id}/snooze [POST]
func (h *handler) Snooze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSnoozeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	snoozed, err := h.uc.Snooze(ctx, req.toScope(), req.ID, req.Duration)
	if err != nil {
		h.l.Errorf(ctx, "uc.Snooze: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSnoozeResp(snoozed))
}

// respondError translates domain errors into the matching HTTP response.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reminder.ErrReminderNotFound):
		response.NotFound(c, err)
	case errors.Is(err, reminder.ErrInvalidSnoozeDuration):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
