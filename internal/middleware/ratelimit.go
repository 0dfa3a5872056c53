package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"inventory-hub/pkg/response"
)

// RateLimit applies a per-client token bucket keyed by client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if m.rateLimitPerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)
	limit := rate.Every(time.Minute / time.Duration(m.rateLimitPerMin))
	burst := m.rateLimitPerMin

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		limiter, ok := limiters[ip]
		if !ok {
			limiter = rate.NewLimiter(limit, burst)
			limiters[ip] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
