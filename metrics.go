package arrkit

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus. Statuses follow the engine Exec contracts: negative means
// failure, except that a search result of -1 is a routine not-found.
type MetricsCollector interface {
	// RecordSort is called after each sort operation.
	RecordSort(count int, duration time.Duration, status int)

	// RecordSearch is called after each search operation.
	RecordSearch(count int, duration time.Duration, result int)

	// RecordShuffle is called after each shuffle operation.
	RecordShuffle(count int, duration time.Duration, status int)

	// RecordBatch is called after each batch sort run. jobs is the number
	// of jobs attempted, failed the number with a negative status.
	RecordBatch(jobs, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSort(int, time.Duration, int)    {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration, int)  {}
func (NoopMetricsCollector) RecordShuffle(int, time.Duration, int) {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SortCount         atomic.Int64
	SortErrors        atomic.Int64
	SortTotalNanos    atomic.Int64
	SearchCount       atomic.Int64
	SearchErrors      atomic.Int64
	SearchMisses      atomic.Int64
	SearchTotalNanos  atomic.Int64
	ShuffleCount      atomic.Int64
	ShuffleErrors     atomic.Int64
	ShuffleTotalNanos atomic.Int64
	BatchCount        atomic.Int64
	BatchJobs         atomic.Int64
	BatchFailed       atomic.Int64
}

// RecordSort implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSort(count int, duration time.Duration, status int) {
	b.SortCount.Add(1)
	b.SortTotalNanos.Add(duration.Nanoseconds())
	if status < 0 {
		b.SortErrors.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(count int, duration time.Duration, result int) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	switch {
	case result == -1:
		b.SearchMisses.Add(1)
	case result < -1:
		b.SearchErrors.Add(1)
	}
}

// RecordShuffle implements MetricsCollector.
func (b *BasicMetricsCollector) RecordShuffle(count int, duration time.Duration, status int) {
	b.ShuffleCount.Add(1)
	b.ShuffleTotalNanos.Add(duration.Nanoseconds())
	if status < 0 {
		b.ShuffleErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(jobs, failed int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchJobs.Add(int64(jobs))
	b.BatchFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SortCount:       b.SortCount.Load(),
		SortErrors:      b.SortErrors.Load(),
		SortAvgNanos:    avg(b.SortTotalNanos.Load(), b.SortCount.Load()),
		SearchCount:     b.SearchCount.Load(),
		SearchErrors:    b.SearchErrors.Load(),
		SearchMisses:    b.SearchMisses.Load(),
		SearchAvgNanos:  avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		ShuffleCount:    b.ShuffleCount.Load(),
		ShuffleErrors:   b.ShuffleErrors.Load(),
		ShuffleAvgNanos: avg(b.ShuffleTotalNanos.Load(), b.ShuffleCount.Load()),
		BatchCount:      b.BatchCount.Load(),
		BatchJobs:       b.BatchJobs.Load(),
		BatchFailed:     b.BatchFailed.Load(),
	}
}

func avg(totalNanos, count int64) int64 {
	if count == 0 {
		return 0
	}
	return totalNanos / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SortCount       int64
	SortErrors      int64
	SortAvgNanos    int64
	SearchCount     int64
	SearchErrors    int64
	SearchMisses    int64
	SearchAvgNanos  int64
	ShuffleCount    int64
	ShuffleErrors   int64
	ShuffleAvgNanos int64
	BatchCount      int64
	BatchJobs       int64
	BatchFailed     int64
}
