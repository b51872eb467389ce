package infra

import (
	"sync"
	"time"
)

// TokenBucket caps on-demand quote refreshes. Safe for concurrent use.
type TokenBucket struct {
	mu       sync.Mutex
	capacity float64
	tokens   float64
	perSec   float64
	last     time.Time
	now      func() time.Time
}

// NewPerMinuteLimiter allows n refreshes per minute with a burst of n.
// n <= 0 means no limit and returns nil.
func NewPerMinuteLimiter(n int) *TokenBucket {
	if n <= 0 {
		return nil
	}
	return newTokenBucket(n, time.Minute, time.Now)
}

func newTokenBucket(n int, per time.Duration, now func() time.Time) *TokenBucket {
	return &TokenBucket{
		capacity: float64(n),
		tokens:   float64(n),
		perSec:   float64(n) / per.Seconds(),
		last:     now(),
		now:      now,
	}
}

// Allow takes a token if one is available.
func (b *TokenBucket) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	t := b.now()
	b.tokens += t.Sub(b.last).Seconds() * b.perSec
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.last = t

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}
