package ratelimiter

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter paces outbound API requests with a token bucket. The Octav API
// meters by credits, not by request rate, but a client-side ceiling keeps bulk
// exports from tripping the server's 429s in the first place.
type RateLimiter struct {
	limiter *rate.Limiter
	rps     int
	burst   int
}

// NewRateLimiter creates a limiter allowing rps requests per second with the
// given burst capacity. Non-positive values fall back to 1.
func NewRateLimiter(rps, burst int) *RateLimiter {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		rps:     rps,
		burst:   burst,
	}
}

// Wait blocks until a token is available or the context is done.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	return rl.limiter.Wait(ctx)
}

// TryAcquire attempts to take a token without blocking.
func (rl *RateLimiter) TryAcquire() bool {
	return rl.limiter.Allow()
}

// Stats returns approximate available tokens, capacity and refill interval.
func (rl *RateLimiter) Stats() (available, capacity int, interval time.Duration) {
	available = int(rl.limiter.Tokens())
	if available < 0 {
		available = 0
	}
	return available, rl.burst, time.Second / time.Duration(rl.rps)
}
