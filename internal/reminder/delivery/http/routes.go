package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	reminders := rg.Group("/reminders")
	{
		reminders.POST("/:id/snooze", h.Snooze)
	}
}
