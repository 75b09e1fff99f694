// Package ratelimiter throttles request-heavy endpoints, most notably
// the credential endpoints (login/register) to slow brute forcing.
package ratelimiter

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"todolist_backend/internal/shared/httpapi"
)

// Config defines the rate limiting parameters for one endpoint group.
type Config struct {
	RequestsPerWindow int           // requests allowed per window
	Window            time.Duration // window the allowance refills over
	Burst             int           // temporary burst above the steady rate
}

// CredentialLimit is the profile applied to login and register:
// 10 attempts per minute per client IP.
var CredentialLimit = Config{
	RequestsPerWindow: 10,
	Window:            time.Minute,
	Burst:             10,
}

// perKeyLimiter manages one token bucket per key (client IP).
type perKeyLimiter struct {
	limiters sync.Map // map[string]*rate.Limiter
	rate     rate.Limit
	burst    int

	mu          sync.Mutex
	lastCleanup time.Time
}

// getLimiter retrieves or creates the bucket for a key.
func (rl *perKeyLimiter) getLimiter(key string) *rate.Limiter {
	if limiter, ok := rl.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}
	limiter := rate.NewLimiter(rl.rate, rl.burst)
	actual, _ := rl.limiters.LoadOrStore(key, limiter)
	rl.maybeCleanup()
	return actual.(*rate.Limiter)
}

// maybeCleanup drops idle buckets so ephemeral client IPs do not
// accumulate forever. A bucket back at full tokens has been idle for at
// least a full window.
func (rl *perKeyLimiter) maybeCleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if time.Since(rl.lastCleanup) < 5*time.Minute {
		return
	}
	rl.lastCleanup = time.Now()

	rl.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(rl.burst) {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// ByClientIP returns a gin middleware enforcing the config per client IP.
func ByClientIP(config Config) gin.HandlerFunc {
	rl := &perKeyLimiter{
		rate:        rate.Limit(float64(config.RequestsPerWindow) / config.Window.Seconds()),
		burst:       config.Burst,
		lastCleanup: time.Now(),
	}

	return func(c *gin.Context) {
		if !rl.getLimiter(c.ClientIP()).Allow() {
			slog.Warn("rate limit exceeded", "remote_addr", c.ClientIP(), "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httpapi.ErrorResponse{
				Message: "Too many requests. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
