package middleware

import (
	"task-assistant/pkg/log"
)

// Middleware bundles the gin middlewares shared by every route group.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// RateLimitOptions configures the per-client token bucket.
type RateLimitOptions struct {
	PerMin    int
	Burst     int
	CacheSize int
}

func New(l log.Logger, opts RateLimitOptions) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(opts),
	}
}
