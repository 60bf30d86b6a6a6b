package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"campus-lost-found/pkg/response"
)

const (
	defaultRateLimitPerMin = 30
	defaultMaxClients      = 1000
	limiterTTL             = 5 * time.Minute
)

// rateLimiter keeps one token bucket per client; idle clients are evicted after limiterTTL.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, maxClients int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = defaultRateLimitPerMin
	}
	if maxClients <= 0 {
		maxClients = defaultMaxClients
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxClients, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    max(1, requestsPerMin/10),
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

// RateLimit throttles requests per client IP. It guards the routes that write to
// the backend: reports and claims.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !mw.limiter.allow(ip) {
			mw.l.Warnf(c.Request.Context(), "middleware.RateLimit: %s %s throttled for %s", c.Request.Method, c.FullPath(), ip)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
