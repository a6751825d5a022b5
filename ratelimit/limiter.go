// Package ratelimit implements client-side token bucket throttling so the SDK
// stays inside the API's published requests-per-second budget instead of
// burning it on 429 responses.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter tracks one token bucket per key. The transport uses a single key
// for the whole API; callers sharing a Limiter across clients can key by
// API key or resource family.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	tokens    float64
	lastFill  time.Time
	perSecond float64
}

// New creates an empty Limiter.
func New() *Limiter {
	return &Limiter{
		buckets: make(map[string]*bucket),
	}
}

// Allow reports whether a request under key may proceed right now.
// A perSecond of 0 means unthrottled (always true).
func (l *Limiter) Allow(key string, perSecond int) bool {
	if perSecond <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.bucket(key, float64(perSecond))
	b.refill()

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Wait blocks until the budget allows a request under key or the context is
// cancelled. A perSecond of 0 returns immediately.
func (l *Limiter) Wait(ctx context.Context, key string, perSecond int) error {
	if perSecond <= 0 {
		return nil
	}

	for {
		if l.Allow(key, perSecond) {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(float64(time.Second) / float64(perSecond))):
			// Retry after roughly one token's worth of time.
		}
	}
}

// Reset discards the bucket for key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, key)
}

func (l *Limiter) bucket(key string, perSecond float64) *bucket {
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{
			tokens:    perSecond, // start full
			lastFill:  time.Now(),
			perSecond: perSecond,
		}
		l.buckets[key] = b
	}
	return b
}

func (b *bucket) refill() {
	now := time.Now()
	elapsed := now.Sub(b.lastFill).Seconds()
	b.tokens += elapsed * b.perSecond
	if b.tokens > b.perSecond {
		b.tokens = b.perSecond // burst capped at one second of budget
	}
	b.lastFill = now
}
