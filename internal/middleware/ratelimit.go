package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"task-assistant/pkg/response"
)

const (
	defaultCacheSize = 1000
	limiterTTL       = 5 * time.Minute
)

// rateLimiter keeps one token bucket per client; idle clients expire.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(opts RateLimitOptions) *rateLimiter {
	size := opts.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = max(1, opts.PerMin/10)
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](size, nil, limiterTTL),
		rate:     rate.Limit(float64(opts.PerMin) / 60.0), // per second
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	return limiter.Allow()
}

// RateLimit rejects clients that exceed their request budget with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !m.limiter.allow(ip) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %s exceeded its budget", ip)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
