package http

import (
	"github.com/gin-gonic/gin"

	"study-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Chat turns are rate limited per client to keep the LLM fallback affordable.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
}
