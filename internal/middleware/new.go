package middleware

import (
	"study-assistant/pkg/log"
)

// Middleware carries the cross-cutting gin middleware for the HTTP server.
type Middleware struct {
	l              log.Logger
	chatRatePerMin int
}

// New creates the middleware set. chatRatePerMin caps chat turns per client
// per minute; zero disables the limiter.
func New(l log.Logger, chatRatePerMin int) Middleware {
	return Middleware{
		l:              l,
		chatRatePerMin: chatRatePerMin,
	}
}
