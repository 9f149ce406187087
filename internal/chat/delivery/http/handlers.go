package http

import (
	"github.com/gin-gonic/gin"

	"study-assistant/pkg/response"
)

// Chat godoc
// @Summary     Handle a chat turn
// @Description Classifies a Vietnamese message, extracts slots and runs the matching action.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat turn"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	reply, err := h.uc.Handle(ctx, req.toScope(), req.Message)
	if err != nil {
		h.l.Errorf(ctx, "uc.Handle: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newChatResp(reply))
}
