package middleware

import (
	"net/http"
	"sync"
	"time"

	"coach-booking-engine/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a process-local fixed-window counter keyed by caller
// identity (party id when authenticated, client IP otherwise). State lives
// in this process only; a multi-instance deployment needs a shared counter
// store instead.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	cfg     config.RateLimitConfig
	now     func() time.Time
}

type window struct {
	startedAt time.Time
	count     int
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*window),
		cfg:     cfg,
		now:     time.Now,
	}
}

func (r *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if partyID, ok := GetPartyID(c); ok {
			key = partyID.String()
		}

		if !r.allow(key) {
			c.Header("Retry-After", r.cfg.Window.String())
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) allow(key string) bool {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.windows[key]
	if !ok || now.Sub(w.startedAt) >= r.cfg.Window {
		r.windows[key] = &window{startedAt: now, count: 1}
		r.sweepLocked(now)
		return true
	}

	if w.count >= r.cfg.MaxRequests {
		return false
	}
	w.count++
	return true
}

// sweepLocked drops expired windows so the map does not grow with every
// caller ever seen. Called on window rollover, never on the hot path.
func (r *RateLimiter) sweepLocked(now time.Time) {
	for key, w := range r.windows {
		if now.Sub(w.startedAt) >= r.cfg.Window {
			delete(r.windows, key)
		}
	}
}
