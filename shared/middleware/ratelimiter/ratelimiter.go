// Package ratelimiter provides per-identity token buckets.
package ratelimiter

import (
	"context"
	"sync"
	"time"

	"github.com/Dharshana-KM/student-spark/shared/logger"
)

// bucket is a single token bucket.
type bucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	rate       float64 // tokens per second
	lastRefill time.Time
	lastSeen   time.Time
}

func newBucket(capacity, rate float64, now time.Time) *bucket {
	return &bucket{tokens: capacity, capacity: capacity, rate: rate, lastRefill: now, lastSeen: now}
}

func (b *bucket) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens += now.Sub(b.lastRefill).Seconds() * b.rate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

func (b *bucket) idleSince(now time.Time) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return now.Sub(b.lastSeen)
}

// UserRateLimiter keeps one bucket per identity (user id or ip).
// Buckets idle for longer than expiration are dropped by Sweep.
type UserRateLimiter struct {
	mu         sync.RWMutex
	buckets    map[string]*bucket
	rate       float64
	capacity   float64
	expiration time.Duration
	now        func() time.Time
}

func NewUserRateLimiter(rate, capacity float64, expiration time.Duration) *UserRateLimiter {
	return &UserRateLimiter{
		buckets:    make(map[string]*bucket),
		rate:       rate,
		capacity:   capacity,
		expiration: expiration,
		now:        time.Now,
	}
}

func (l *UserRateLimiter) get(identity string) *bucket {
	l.mu.RLock()
	b, ok := l.buckets[identity]
	l.mu.RUnlock()
	if ok {
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if b, ok = l.buckets[identity]; ok {
		return b
	}
	b = newBucket(l.capacity, l.rate, l.now())
	l.buckets[identity] = b
	return b
}

// Allow takes a token from identity's bucket.
func (l *UserRateLimiter) Allow(identity string) bool {
	return l.get(identity).allow(l.now())
}

// Sweep drops idle buckets and returns how many were removed.
func (l *UserRateLimiter) Sweep() int {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for id, b := range l.buckets {
		if b.idleSince(now) > l.expiration {
			delete(l.buckets, id)
			removed++
		}
	}
	return removed
}

func (l *UserRateLimiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.buckets)
}

// StartSweeper runs Sweep every interval until ctx is done.
func (l *UserRateLimiter) StartSweeper(ctx context.Context, name string, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		log := logger.Log.With("component", "ratelimiter", "limiter", name)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := l.Sweep(); n > 0 {
					log.Debug("dropped idle buckets", "count", n)
				}
			}
		}
	}()
}

// Presets for write endpoints.
func NewPostLimiter() *UserRateLimiter    { return NewUserRateLimiter(1.0/60, 3, time.Hour) }
func NewCommentLimiter() *UserRateLimiter { return NewUserRateLimiter(1.0/10, 5, time.Hour) }
func NewMessageLimiter() *UserRateLimiter { return NewUserRateLimiter(1, 5, time.Hour) }
func NewJoinLimiter() *UserRateLimiter    { return NewUserRateLimiter(1.0/30, 5, time.Hour) }
