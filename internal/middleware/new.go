package middleware

import (
	"babygpt/config"
	"babygpt/pkg/log"
)

type Middleware struct {
	l       log.Logger
	config  config.RateLimitConfig
	limiter *rateLimiter
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		config:  cfg,
		limiter: newRateLimiter(cfg.PerMinute),
	}
}
