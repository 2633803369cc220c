// Package middleware provides HTTP middleware for the fragmentor.
package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Cap on tracked client IPs so the bucket table cannot grow without bound.
const maxTrackedIPs = 100_000

// Stale buckets are evicted after this long without a refill.
const (
	bucketMaxAge  = 10 * time.Minute
	sweepInterval = 5 * time.Minute
)

// ipBucket is the token-bucket state for a single client IP.
type ipBucket struct {
	tokens   int
	refilled time.Time
}

// RateLimiter applies a per-IP token bucket across all routes.
type RateLimiter struct {
	mu     sync.Mutex
	byIP   map[string]*ipBucket
	perSec int
	burst  int
}

// NewRateLimiter creates a RateLimiter allowing perSec requests per second
// with the given burst. A background goroutine sweeps stale buckets until
// ctx is cancelled.
func NewRateLimiter(ctx context.Context, perSec, burst int) *RateLimiter {
	rl := &RateLimiter{
		byIP:   make(map[string]*ipBucket),
		perSec: perSec,
		burst:  burst,
	}
	go rl.sweep(ctx)

	return rl
}

// take refills the bucket from elapsed time and consumes one token.
// Caller holds rl.mu.
func (rl *RateLimiter) take(b *ipBucket) bool {
	now := time.Now()
	if refill := int(now.Sub(b.refilled).Seconds() * float64(rl.perSec)); refill > 0 {
		b.tokens = min(b.tokens+refill, rl.burst)
		b.refilled = now
	}

	if b.tokens == 0 {
		return false
	}
	b.tokens--

	return true
}

// sweep periodically drops buckets that have not refilled recently.
func (rl *RateLimiter) sweep(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for ip, b := range rl.byIP {
				if now.Sub(b.refilled) > bucketMaxAge {
					delete(rl.byIP, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Handler returns Gin middleware that rate limits by client IP.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// ClientIP cannot be spoofed via X-Forwarded-For because the
		// router calls SetTrustedProxies(nil).
		ip := c.ClientIP()

		rl.mu.Lock()
		b := rl.byIP[ip]
		if b == nil {
			if len(rl.byIP) >= maxTrackedIPs {
				rl.mu.Unlock()
				respondError(c, http.StatusTooManyRequests, "rate_limited", "too many clients")

				return
			}
			b = &ipBucket{tokens: rl.burst, refilled: time.Now()}
			rl.byIP[ip] = b
		}
		ok := rl.take(b)
		rl.mu.Unlock()

		if !ok {
			respondError(c, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded")

			return
		}

		c.Next()
	}
}
