package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"study-assistant/pkg/response"
)

const limiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit limits requests per client IP. Exceeding the limit returns 429
// without touching the use case, which keeps the LLM fallback off the hot
// path for abusive clients.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if m.chatRatePerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*clientLimiter)
	)
	limit := rate.Limit(float64(m.chatRatePerMin) / 60)

	return func(c *gin.Context) {
		key := c.ClientIP()

		mu.Lock()
		cl, ok := clients[key]
		if !ok {
			cl = &clientLimiter{limiter: rate.NewLimiter(limit, m.chatRatePerMin)}
			clients[key] = cl
		}
		cl.lastSeen = time.Now()
		if len(clients) > 1024 {
			for k, v := range clients {
				if time.Since(v.lastSeen) > limiterTTL {
					delete(clients, k)
				}
			}
		}
		allowed := cl.limiter.Allow()
		mu.Unlock()

		if !allowed {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: client %s over limit", key)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests",
			})
			return
		}
		c.Next()
	}
}
