package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("id is required")

// processSnoozeReq binds and validates the snooze request body + URI param.
func (h *handler) processSnoozeReq(c *gin.Context) (snoozeReq, error) {
	var req snoozeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, req.validate()
}
