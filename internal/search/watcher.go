package search

import (
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// DefaultPollInterval is the sleep between two watcher snapshots.
const DefaultPollInterval = time.Millisecond

// Watcher polls worker counters and lowers the signal's cutoff once enough
// matches exist.
type Watcher struct {
	workers  []*Worker
	sig      *Signal
	limit    int
	interval time.Duration
	logger   *slog.Logger
	logEvery rate.Sometimes
	polls    int
}

// NewWatcher creates a Watcher for workers, ordered by partition index.
func NewWatcher(workers []*Worker, sig *Signal, limit int, interval time.Duration, logger *slog.Logger) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Watcher{
		workers:  workers,
		sig:      sig,
		limit:    limit,
		interval: interval,
		logger:   logger,
		logEvery: rate.Sometimes{Interval: 100 * time.Millisecond},
	}
}

// Run polls until the signal is raised, either by the watcher itself or by
// the coordinator once every worker has finished.
func (w *Watcher) Run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.sig.Done():
			return
		case <-ticker.C:
		}
		if w.sig.Raised() || w.poll() {
			return
		}
	}
}

// Polls returns the number of snapshots taken.
func (w *Watcher) Polls() int {
	return w.polls
}

// poll takes one snapshot and reports whether the signal is now raised.
func (w *Watcher) poll() bool {
	w.polls++

	cutoff := w.sig.Cutoff()
	sum := 0
	for j, wk := range w.workers[:min(cutoff, len(w.workers))] {
		sum += wk.Count()
		if sum >= w.limit {
			w.sig.Cut(j)
			w.logger.Debug("early stop",
				"partition", j,
				"snapshot", sum,
				"limit", w.limit,
				"polls", w.polls,
			)
			return j == 0
		}
	}

	w.logEvery.Do(func() {
		w.logger.Debug("watcher snapshot",
			"snapshot", sum,
			"limit", w.limit,
			"cutoff", cutoff,
		)
	})
	return false
}
