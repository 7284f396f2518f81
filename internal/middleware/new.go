package middleware

import (
	"time"

	"golang.org/x/time/rate"

	pkgLog "realtime-taskboard/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l       pkgLog.Logger
	limiter *rate.Limiter
}

// New creates the middleware set. perMin caps mutating traffic to the remote
// collection; zero or negative disables the cap.
func New(l pkgLog.Logger, perMin int) Middleware {
	var limiter *rate.Limiter
	if perMin > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
