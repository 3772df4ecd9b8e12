package middleware

import (
	"sync"

	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// IPLimiter rate-limits per client address. Applied only to the
// authentication endpoints; the rest of the API carries no ceiling.
type IPLimiter struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
	b  int
}

// NewIPLimiter allows reqPerMinute sustained requests per source address
// with the given burst.
func NewIPLimiter(reqPerMinute float64, burst int) *IPLimiter {
	return &IPLimiter{
		m: make(map[string]*rate.Limiter),
		r: rate.Limit(reqPerMinute / 60.0),
		b: burst,
	}
}

func (l *IPLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.m[ip]; ok {
		return lim
	}
	lim := rate.NewLimiter(l.r, l.b)
	l.m[ip] = lim
	return lim
}

// Allow reports whether a request from ip may proceed.
func (l *IPLimiter) Allow(ip string) bool {
	return l.limiterFor(ip).Allow()
}

// RateLimitMiddleware rejects requests over the per-IP ceiling with 429.
func RateLimitMiddleware(limiter *IPLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			apperrors.HandleError(c, apperrors.ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
