package search

import (
	"errors"
	"unsafe"

	"github.com/hupe1980/vfind/internal/partition"
	"github.com/hupe1980/vfind/resource"
)

// ErrWorkerRunning is returned by Aggregate if a worker has not finished.
var ErrWorkerRunning = errors.New("search: worker still running")

const indexSize = int64(unsafe.Sizeof(int(0)))

// WorkerStats describes how one worker ended.
type WorkerStats struct {
	Partition partition.Partition
	State     State
	Matches   int
}

// Result is the aggregated outcome of one search.
type Result struct {
	// Indices holds the first min(Found, limit) matches in ascending order.
	Indices []int
	// Found is the sum of the final worker counts before truncation.
	Found   int
	Workers []WorkerStats
}

// EarlyStopped reports whether any worker was cancelled before exhausting its
// partition.
func (r Result) EarlyStopped() bool {
	for _, w := range r.Workers {
		if w.State == Cancelled {
			return true
		}
	}
	return false
}

// Aggregate concatenates the matches of finished workers in partition order
// and truncates them to limit (negative means unbounded). Partitions are
// contiguous and each worker's matches ascend, so the result ascends without
// a merge.
func Aggregate(workers []*Worker, limit int, mem *resource.Controller) (Result, error) {
	res := Result{Workers: make([]WorkerStats, len(workers))}
	for i, w := range workers {
		st := w.State()
		if st == Running {
			return Result{}, ErrWorkerRunning
		}
		res.Workers[i] = WorkerStats{Partition: w.Partition(), State: st, Matches: w.Count()}
		res.Found += w.Count()
	}

	n := res.Found
	if limit >= 0 {
		n = min(n, limit)
	}

	// The output is handed to the caller; it only counts towards the budget
	// while worker buffers are still alive.
	bytes := int64(n) * indexSize
	if err := mem.AcquireMemory(bytes); err != nil {
		return Result{}, err
	}
	defer mem.ReleaseMemory(bytes)

	out := make([]int, 0, n)
	for _, w := range workers {
		if len(out) == n {
			break
		}
		idx := w.Indices()
		out = append(out, idx[:min(len(idx), n-len(out))]...)
	}
	res.Indices = out

	return res, nil
}
