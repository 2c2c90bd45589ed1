package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/hupe1980/vfind/internal/partition"
	"github.com/hupe1980/vfind/internal/scan"
	"github.com/hupe1980/vfind/resource"
	"golang.org/x/sync/errgroup"
)

// Plan is the per-call context shared by the workers and the watcher of one
// search. Nothing in it outlives the call.
type Plan struct {
	Start  int
	End    int
	Step   int
	Target int32
	Kernel scan.Kernel

	// Limit caps the number of returned matches; negative means unbounded.
	Limit int

	Workers      int
	PollInterval time.Duration
	Mem          *resource.Controller
	Logger       *slog.Logger
}

// Run executes plan over data. Workers and the watcher are spawned for this
// call and joined before it returns.
//
// Cancelling ctx stops every worker at its next check; Run then returns
// ctx.Err().
func Run(ctx context.Context, data []int32, plan Plan) (Result, error) {
	logger := plan.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	parts, err := partition.Split(plan.Start, plan.End, plan.Step, plan.Workers)
	if err != nil {
		return Result{}, err
	}

	sig := NewSignal(len(parts))
	workers := make([]*Worker, len(parts))
	for i, p := range parts {
		workers[i] = NewWorker(p, plan.Mem)
	}
	defer func() {
		for _, w := range workers {
			w.release()
		}
	}()

	stop := context.AfterFunc(ctx, sig.Raise)
	defer stop()

	if len(workers) == 1 {
		err = workers[0].Run(data, plan.Target, plan.Kernel, sig, plan.Limit)
	} else {
		err = runParallel(data, plan, workers, sig, logger)
	}
	if err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res, err := Aggregate(workers, plan.Limit, plan.Mem)
	if err != nil {
		return Result{}, err
	}

	logger.Debug("search joined",
		"workers", len(workers),
		"found", res.Found,
		"returned", len(res.Indices),
		"early_stopped", res.EarlyStopped(),
		"peak_memory", plan.Mem.PeakMemoryUsage(),
		"memory_limit", plan.Mem.MemoryLimit(),
	)
	return res, nil
}

func runParallel(data []int32, plan Plan, workers []*Worker, sig *Signal, logger *slog.Logger) error {
	var watcherDone chan struct{}
	if plan.Limit >= 0 {
		watcher := NewWatcher(workers, sig, plan.Limit, plan.PollInterval, logger)
		watcherDone = make(chan struct{})
		go func() {
			defer close(watcherDone)
			watcher.Run()
		}()
	}

	var g errgroup.Group
	for _, w := range workers {
		g.Go(func() error {
			err := w.Run(data, plan.Target, plan.Kernel, sig, plan.Limit)
			if err != nil {
				sig.Raise()
			}
			logger.Debug("worker finished",
				"partition", w.Partition().Index,
				"state", w.State(),
				"matches", w.Count(),
			)
			return err
		})
	}
	err := g.Wait()

	// The watcher must observe the raised signal even if the limit was
	// never reached.
	sig.Raise()
	if watcherDone != nil {
		<-watcherDone
	}
	return err
}
