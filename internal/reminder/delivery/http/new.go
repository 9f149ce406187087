package http

import (
	"study-assistant/internal/reminder"
	"study-assistant/pkg/log"
)

// Handler is the public interface for the reminder HTTP delivery layer.
type Handler interface {
	Snooze(c interface{})
}

type handler struct {
	l  log.Logger
	uc reminder.UseCase
}

// New creates a new HTTP handler for the reminder domain.
func New(l log.Logger, uc reminder.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
