package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaidroger/logistics-analytics-go/pkg/response"
)

// rateLimiter is a sliding-window per-IP limiter. Entries for idle IPs are
// swept by a background goroutine so the map does not grow unbounded.
type rateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}
	go rl.sweep()
	return rl
}

func (rl *rateLimiter) sweep() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, times := range rl.requests {
			live := times[:0]
			for _, t := range times {
				if now.Sub(t) < rl.window {
					live = append(live, t)
				}
			}
			if len(live) == 0 {
				delete(rl.requests, ip)
			} else {
				rl.requests[ip] = live
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	live := rl.requests[ip][:0]
	for _, t := range rl.requests[ip] {
		if now.Sub(t) < rl.window {
			live = append(live, t)
		}
	}

	if len(live) >= rl.limit {
		rl.requests[ip] = live
		return false
	}

	rl.requests[ip] = append(live, now)
	return true
}

// RateLimit limits each client IP to limit requests per window
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	limiter := newRateLimiter(limit, window)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
