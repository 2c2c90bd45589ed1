package search

import (
	"sync/atomic"

	"github.com/hupe1980/vfind/internal/partition"
	"github.com/hupe1980/vfind/internal/scan"
	"github.com/hupe1980/vfind/resource"
)

// State is the lifecycle state of a Worker.
type State int32

const (
	// Running is the state from dispatch until the scan returns.
	Running State = iota
	// Completed means the whole partition was scanned.
	Completed
	// Cancelled means the signal stopped the scan; recorded matches are kept.
	Cancelled
	// Failed means the match buffer could not grow.
	Failed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Worker scans one partition into a buffer it owns.
type Worker struct {
	part  partition.Partition
	buf   *scan.Buffer
	state atomic.Int32
}

// NewWorker creates a Worker for p whose buffer is accounted against mem.
func NewWorker(p partition.Partition, mem *resource.Controller) *Worker {
	return &Worker{
		part: p,
		buf:  scan.NewBuffer(mem),
	}
}

// Run scans the partition with kernel until it is exhausted or sig stops it.
//
// A non-negative limit makes the worker stop once its own count reaches it
// and raise sig. That is only valid for partition 0, whose count is the whole
// prefix, so other partitions ignore it.
func (w *Worker) Run(data []int32, target int32, kernel scan.Kernel, sig *Signal, limit int) error {
	st := &stopper{sig: sig, index: w.part.Index, limit: -1}
	if w.part.Index == 0 && limit >= 0 {
		st.buf = w.buf
		st.limit = limit
	}

	completed, err := kernel(data, w.part, target, w.buf, st)
	switch {
	case err != nil:
		w.state.Store(int32(Failed))
	case completed:
		w.state.Store(int32(Completed))
	default:
		w.state.Store(int32(Cancelled))
	}
	return err
}

// State returns the current lifecycle state.
func (w *Worker) State() State {
	return State(w.state.Load())
}

// Count returns the published match count. Safe to call while running.
func (w *Worker) Count() int {
	return w.buf.Count()
}

// Partition returns the partition the worker scans.
func (w *Worker) Partition() partition.Partition {
	return w.part
}

// Indices returns the recorded matches. Only valid once the worker is done.
func (w *Worker) Indices() []int {
	return w.buf.Indices()
}

func (w *Worker) release() {
	w.buf.Release()
}

type stopper struct {
	sig   *Signal
	index int
	buf   *scan.Buffer
	limit int
}

func (s *stopper) Stopped() bool {
	if s.sig.Stopped(s.index) {
		return true
	}
	if s.limit >= 0 && s.buf.Count() >= s.limit {
		s.sig.Raise()
		return true
	}
	return false
}
