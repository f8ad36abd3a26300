package ratelimiter

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiter_Basic(t *testing.T) {
	// 10 RPS, 5 token burst
	rl := NewRateLimiter(10, 5)

	ctx := context.Background()

	// Use all 5 burst tokens immediately
	for i := 0; i < 5; i++ {
		if err := rl.Wait(ctx); err != nil {
			t.Fatalf("Failed to get token %d: %v", i+1, err)
		}
	}

	// Bucket drained, next call must wait roughly one refill interval
	start := time.Now()
	if err := rl.Wait(ctx); err != nil {
		t.Fatalf("Failed to get token after waiting: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
		t.Errorf("Expected to wait at least 80ms, but waited %v", elapsed)
	}
}

func TestRateLimiter_TryAcquire(t *testing.T) {
	rl := NewRateLimiter(10, 2)

	if !rl.TryAcquire() {
		t.Error("Failed to acquire first token")
	}
	if !rl.TryAcquire() {
		t.Error("Failed to acquire second token")
	}

	available, capacity, interval := rl.Stats()
	t.Logf("Available: %d, Capacity: %d, Interval: %v", available, capacity, interval)

	if rl.TryAcquire() {
		t.Error("Should not have acquired 3rd token")
	}
}

func TestRateLimiter_DefaultsToMinimum(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	if !rl.TryAcquire() {
		t.Error("Limiter with defaulted values should grant one token")
	}
}
