package ratelimiter

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestLimiter(rate, capacity float64, expiration time.Duration) (*UserRateLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := NewUserRateLimiter(rate, capacity, expiration)
	l.now = clock.Now
	return l, clock
}

func TestUserRateLimiter_Allow(t *testing.T) {
	t.Run("allows up to capacity then denies", func(t *testing.T) {
		l, _ := newTestLimiter(1, 3, time.Hour)
		assert.True(t, l.Allow("u1"))
		assert.True(t, l.Allow("u1"))
		assert.True(t, l.Allow("u1"))
		assert.False(t, l.Allow("u1"))
	})

	t.Run("refills over time", func(t *testing.T) {
		l, clock := newTestLimiter(1, 1, time.Hour)
		assert.True(t, l.Allow("u1"))
		assert.False(t, l.Allow("u1"))
		clock.Advance(1500 * time.Millisecond)
		assert.True(t, l.Allow("u1"))
	})

	t.Run("refill never exceeds capacity", func(t *testing.T) {
		l, clock := newTestLimiter(10, 2, time.Hour)
		assert.True(t, l.Allow("u1"))
		clock.Advance(time.Minute)
		assert.True(t, l.Allow("u1"))
		assert.True(t, l.Allow("u1"))
		assert.False(t, l.Allow("u1"))
	})

	t.Run("identities are independent", func(t *testing.T) {
		l, _ := newTestLimiter(1, 1, time.Hour)
		assert.True(t, l.Allow("u1"))
		assert.False(t, l.Allow("u1"))
		assert.True(t, l.Allow("u2"))
	})
}

func TestUserRateLimiter_Sweep(t *testing.T) {
	l, clock := newTestLimiter(1, 1, time.Minute)
	l.Allow("idle")
	clock.Advance(30 * time.Second)
	l.Allow("active")
	clock.Advance(45 * time.Second)

	assert.Equal(t, 1, l.Sweep())
	assert.Equal(t, 1, l.Len())
	assert.True(t, l.Allow("idle"), "a swept identity starts with a full bucket")
}

func TestUserRateLimiter_Concurrent(t *testing.T) {
	l, _ := newTestLimiter(0, 50, time.Hour)
	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("shared") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, allowed)
}
