package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidSchedule(t *testing.T) {
	_, err := New(Job{Name: "stats", Schedule: "every minute", Run: func(context.Context) error { return nil }})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stats")
}

func TestScheduler_RunsJobs(t *testing.T) {
	var runs, failures atomic.Int32
	s, err := New(
		Job{Name: "count", Schedule: "@every 1s", Run: func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			runs.Add(1)
			return nil
		}},
		Job{Name: "broken", Schedule: "@every 1s", Run: func(context.Context) error {
			failures.Add(1)
			return errors.New("boom")
		}},
		Job{Name: "panics", Schedule: "@every 1s", Run: func(context.Context) error {
			panic("recovered by the chain")
		}},
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)

	assert.Eventually(t, func() bool { return runs.Load() >= 1 && failures.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
}
