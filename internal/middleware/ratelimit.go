package middleware

import (
	"github.com/gin-gonic/gin"

	"realtime-taskboard/pkg/response"
)

// RateLimit applies a process-wide token bucket. Requests over the budget get
// 429 instead of piling up against the remote collection.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter != nil && !mw.limiter.Allow() {
			mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s %s", c.Request.Method, c.Request.URL.Path)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
