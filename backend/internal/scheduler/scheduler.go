// Package scheduler runs the periodic background jobs of the API process.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/Dharshana-KM/student-spark/shared/logger"
	"github.com/robfig/cron/v3"
)

const jobTimeout = 30 * time.Second

// Job is one periodic task.
type Job struct {
	Name     string
	Schedule string
	Run      func(ctx context.Context) error
}

type Scheduler struct {
	cron *cron.Cron
}

// New registers jobs on a cron instance. Runs of a job never overlap;
// a run still in progress makes the next tick skip.
func New(jobs ...Job) (*Scheduler, error) {
	c := cron.New(cron.WithChain(cron.Recover(cronLogger{}), cron.SkipIfStillRunning(cronLogger{})))
	for _, job := range jobs {
		if _, err := c.AddFunc(job.Schedule, wrap(job)); err != nil {
			return nil, fmt.Errorf("schedule %s (%q): %w", job.Name, job.Schedule, err)
		}
	}
	return &Scheduler{cron: c}, nil
}

func wrap(job Job) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		start := time.Now()
		if err := job.Run(ctx); err != nil {
			logger.Log.Error("job failed", "component", "scheduler", "job", job.Name, "error", err)
			return
		}
		logger.Log.Debug("job done", "component", "scheduler", "job", job.Name, "took", time.Since(start))
	}
}

// Start runs the jobs until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Start()
	logger.Log.Info("scheduler started", "component", "scheduler", "jobs", len(s.cron.Entries()))
	go func() {
		<-ctx.Done()
		<-s.cron.Stop().Done()
		logger.Log.Info("scheduler stopped", "component", "scheduler")
	}()
}

// cronLogger forwards cron's own messages to the structured logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	logger.Log.Debug(msg, append([]any{"component", "cron"}, keysAndValues...)...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	logger.Log.Error(msg, append([]any{"component", "cron", "error", err}, keysAndValues...)...)
}
