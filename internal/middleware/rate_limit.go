package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/spu-coder/my-ai-advisor/pkg/response"
)

// RateLimit throttles requests per client IP as gin resolves it: the socket
// peer, or a forwarded address only when the peer is a trusted proxy. Auth
// paths get their own, stricter bucket.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		limits := m.defaultLimits
		if isAuthPath(c.Request.URL.Path) {
			limits = m.authLimits
		}

		ip := c.ClientIP()
		if wait, ok := limits.reserve(ip, time.Now()); !ok {
			m.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: %s limited on %s", ip, c.Request.URL.Path)
			c.Header(HeaderRetryAfter, strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			response.Abort(c, http.StatusTooManyRequests, guardResp{Detail: MsgRateLimited, ErrorAr: MsgRateLimitedAr})
			return
		}
		c.Next()
	}
}

func isAuthPath(path string) bool {
	for _, p := range authPathPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// rateLimiter keeps one token bucket per key; idle keys expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requests int, window time.Duration) *rateLimiter {
	if requests <= 0 {
		requests = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](10000, nil, 5*window),
		rate:     rate.Limit(float64(requests) / window.Seconds()),
		burst:    requests,
	}
}

// reserve takes one token for key. When none is available it returns how
// long the caller should wait.
func (rl *rateLimiter) reserve(key string, now time.Time) (time.Duration, bool) {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	res := limiter.ReserveN(now, 1)
	if !res.OK() {
		return time.Duration(float64(time.Second) / float64(rl.rate)), false
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return delay, false
	}
	return 0, true
}
