package vfind

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSearch is called after each search.
	// workers is the number of partitions that ran, matches the number of
	// returned indices, err is nil if successful.
	RecordSearch(variant Variant, workers, matches int, duration time.Duration, err error)

	// RecordEarlyStop is called when a limited search cancelled at least one
	// worker before it exhausted its partition.
	RecordEarlyStop(limit, found int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(Variant, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordEarlyStop(int, int)                            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
	ScalarSearches   atomic.Int64
	VectorSearches   atomic.Int64
	ThreadedSearches atomic.Int64
	MatchesReturned  atomic.Int64
	EarlyStops       atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(variant Variant, workers, matches int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
		return
	}
	switch {
	case workers > 1:
		b.ThreadedSearches.Add(1)
	case variant == Vector:
		b.VectorSearches.Add(1)
	default:
		b.ScalarSearches.Add(1)
	}
	b.MatchesReturned.Add(int64(matches))
}

// RecordEarlyStop implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEarlyStop(int, int) {
	b.EarlyStops.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SearchCount:      b.SearchCount.Load(),
		SearchErrors:     b.SearchErrors.Load(),
		SearchAvgNanos:   b.getAvgSearchNanos(),
		ScalarSearches:   b.ScalarSearches.Load(),
		VectorSearches:   b.VectorSearches.Load(),
		ThreadedSearches: b.ThreadedSearches.Load(),
		MatchesReturned:  b.MatchesReturned.Load(),
		EarlyStops:       b.EarlyStops.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SearchCount      int64
	SearchErrors     int64
	SearchAvgNanos   int64
	ScalarSearches   int64
	VectorSearches   int64
	ThreadedSearches int64
	MatchesReturned  int64
	EarlyStops       int64
}
