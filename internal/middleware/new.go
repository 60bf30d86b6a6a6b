package middleware

import (
	"campus-lost-found/pkg/log"
)

// Middleware bundles the gin middlewares shared by all domains.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// Config configures the write-route rate limiter.
type Config struct {
	RateLimitPerMin int
	MaxClients      int
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RateLimitPerMin, cfg.MaxClients),
	}
}
