package middleware

import (
	"time"

	"github.com/spu-coder/my-ai-advisor/config"
	"github.com/spu-coder/my-ai-advisor/pkg/log"
	"github.com/spu-coder/my-ai-advisor/pkg/scope"
)

type Middleware struct {
	l             log.Logger
	jwtManager    scope.Manager
	maxBodyBytes  int64
	defaultLimits *rateLimiter
	authLimits    *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, cfg config.SecurityConfig) Middleware {
	window := cfg.RateLimitWindow
	if window <= 0 {
		window = time.Minute
	}
	return Middleware{
		l:             l,
		jwtManager:    jwtManager,
		maxBodyBytes:  cfg.MaxRequestBytes,
		defaultLimits: newRateLimiter(cfg.RateLimitPerMin, window),
		authLimits:    newRateLimiter(cfg.AuthRateLimitPerMin, window),
	}
}
