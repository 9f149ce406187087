package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds and validates the chat turn request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
