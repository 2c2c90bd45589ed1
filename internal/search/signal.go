package search

import (
	"sync"
	"sync/atomic"
)

// Signal is the shared cancellation state of one search. It only moves
// towards stopping: the cutoff never increases, and once raised it stays
// raised.
type Signal struct {
	cutoff atomic.Int64
	once   sync.Once
	done   chan struct{}
}

// NewSignal creates a Signal under which all of n partitions may run.
func NewSignal(n int) *Signal {
	s := &Signal{done: make(chan struct{})}
	s.cutoff.Store(int64(n))
	return s
}

// Stopped reports whether the worker of the given partition must stop.
func (s *Signal) Stopped(index int) bool {
	return int64(index) >= s.cutoff.Load()
}

// Cut stops every partition at or above index. Cutting above the current
// cutoff is a no-op.
func (s *Signal) Cut(index int) {
	index = max(index, 0)
	for {
		cur := s.cutoff.Load()
		if int64(index) >= cur || s.cutoff.CompareAndSwap(cur, int64(index)) {
			break
		}
	}
	if index == 0 {
		s.once.Do(func() { close(s.done) })
	}
}

// Raise stops every partition.
func (s *Signal) Raise() {
	s.Cut(0)
}

// Raised reports whether every partition has been told to stop.
func (s *Signal) Raised() bool {
	return s.cutoff.Load() == 0
}

// Cutoff returns the lowest stopped partition index.
func (s *Signal) Cutoff() int {
	return int(s.cutoff.Load())
}

// Done is closed when the signal is raised.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}
