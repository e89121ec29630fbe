package service

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/Dharshana-KM/student-spark/shared/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var tableRows = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "spark",
	Name:      "table_rows",
	Help:      "Number of rows per table, refreshed by the stats job.",
}, []string{"table"})

type StatsStorage interface {
	CountRows(ctx context.Context) (map[string]int64, error)
}

// Stats exports row counts of the domain tables as prometheus gauges.
type Stats struct {
	storage StatsStorage

	mu        sync.RWMutex
	counts    map[string]int64
	updatedAt time.Time
}

func NewStats(storage StatsStorage) *Stats {
	return &Stats{storage: storage, counts: map[string]int64{}}
}

// Update recounts rows and refreshes the gauges. On error the previous values stay.
func (s *Stats) Update(ctx context.Context) error {
	counts, err := s.storage.CountRows(ctx)
	if err != nil {
		return err
	}
	for table, n := range counts {
		tableRows.WithLabelValues(table).Set(float64(n))
	}

	s.mu.Lock()
	s.counts = counts
	s.updatedAt = time.Now()
	s.mu.Unlock()

	logger.Log.Debug("stats updated", "component", "stats", "tables", len(counts))
	return nil
}

// Counts returns a copy of the last successful counts and when they were taken.
func (s *Stats) Counts() (map[string]int64, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.counts), s.updatedAt
}
