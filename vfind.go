package vfind

import (
	"context"
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/vfind/internal/scan"
	"github.com/hupe1980/vfind/internal/search"
	"github.com/hupe1980/vfind/internal/simd"
)

// Lanes is the number of consecutive values the vector variant compares at
// every stepped position.
const Lanes = simd.Lanes

// NoLimit requests every match.
const NoLimit = -1

// Variant selects the scan kernel.
type Variant uint8

const (
	// Scalar compares one stepped position at a time with integer equality.
	Scalar Variant = iota
	// Vector compares the Lanes values starting at every stepped position as
	// float32 lanes. Steps must be multiples of Lanes.
	Vector
)

func (v Variant) String() string {
	switch v {
	case Scalar:
		return "scalar"
	case Vector:
		return "vector"
	default:
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
}

// Request describes one search over an array.
type Request struct {
	// Start and End bound the range, both inclusive.
	Start int
	End   int
	// Step is the distance between examined positions.
	Step   int
	Target int32
	// Variant selects the kernel.
	Variant Variant
	// Limit caps the returned matches to the smallest-index ones. Negative
	// means unbounded.
	Limit int
}

// Outcome is the result of a search.
type Outcome struct {
	// Count is len(Indices).
	Count int
	// Indices holds the matches in ascending order.
	Indices []int
	Stats   Stats
}

// Stats describes how a search ran.
type Stats struct {
	// Found is the sum of the final worker counts before truncation. With a
	// limit it depends on timing; without one it equals Count.
	Found        int
	EarlyStopped bool
	ISA          string
	Workers      []WorkerStats
}

// WorkerStats describes how one worker ended.
type WorkerStats struct {
	Partition int
	Start     int
	End       int
	State     string
	Matches   int
}

// Bitmap returns the indices as a roaring bitmap.
func (o *Outcome) Bitmap() *roaring64.Bitmap {
	bm := roaring64.New()
	for _, i := range o.Indices {
		bm.Add(uint64(i))
	}
	return bm
}

// ISA returns the name of the instruction set the vector kernel was bound to
// at startup.
func ISA() string {
	return simd.ActiveISA().String()
}

// Search finds the indices of req.Target in data.
//
// The range must satisfy 0 <= Start <= End < len(data). For the Vector
// variant values whose bit pattern is a float NaN (above 0x7F800000) are not
// reliably found; all values in [0, 0x7F800000] give the same result as
// Scalar over the same lanes.
//
// With a limit, the returned indices are the first Limit matches of the
// unbounded search, independent of how early the workers were stopped.
func Search(ctx context.Context, data []int32, req Request, opts ...Option) (*Outcome, error) {
	o := applyOptions(opts)

	start := time.Now()
	out, err := run(ctx, data, req, o)
	elapsed := time.Since(start)

	// The range may have fewer positions than requested workers.
	matches, workers := 0, o.workers
	if out != nil {
		matches, workers = out.Count, len(out.Stats.Workers)
		if out.Stats.EarlyStopped {
			o.metricsCollector.RecordEarlyStop(req.Limit, out.Stats.Found)
		}
	}
	o.metricsCollector.RecordSearch(req.Variant, workers, matches, elapsed, err)
	o.logger.WithRequest(req).LogSearch(ctx, workers, out, elapsed, err)

	return out, err
}

func run(ctx context.Context, data []int32, req Request, o options) (*Outcome, error) {
	kernel, err := req.validate(len(data))
	if err != nil {
		return nil, err
	}

	if err := o.resources.AcquireSlot(ctx); err != nil {
		return nil, err
	}
	defer o.resources.ReleaseSlot()

	limit := req.Limit
	if limit < 0 {
		limit = NoLimit
	}

	res, err := search.Run(ctx, data, search.Plan{
		Start:        req.Start,
		End:          req.End,
		Step:         req.Step,
		Target:       req.Target,
		Kernel:       kernel,
		Limit:        limit,
		Workers:      o.workers,
		PollInterval: o.pollInterval,
		Mem:          o.resources,
		Logger:       o.logger.Logger,
	})
	if err != nil {
		return nil, translateError(err)
	}

	out := &Outcome{
		Count:   len(res.Indices),
		Indices: res.Indices,
		Stats: Stats{
			Found:        res.Found,
			EarlyStopped: res.EarlyStopped(),
			ISA:          ISA(),
			Workers:      make([]WorkerStats, len(res.Workers)),
		},
	}
	for i, w := range res.Workers {
		out.Stats.Workers[i] = WorkerStats{
			Partition: w.Partition.Index,
			Start:     w.Partition.Start,
			End:       w.Partition.End,
			State:     w.State.String(),
			Matches:   w.Matches,
		}
	}
	return out, nil
}

// validate checks the step before the range, so a bad step is reported even
// for an empty array.
func (r Request) validate(n int) (scan.Kernel, error) {
	var kernel scan.Kernel
	switch r.Variant {
	case Scalar:
		if r.Step < 1 {
			return nil, &StepError{Step: r.Step, Variant: r.Variant}
		}
		kernel = scan.ScalarInto
	case Vector:
		if err := scan.CheckVectorStep(r.Step); err != nil {
			return nil, &StepError{Step: r.Step, Variant: r.Variant, cause: err}
		}
		kernel = scan.VectorInto
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidVariant, r.Variant)
	}

	if r.Start < 0 || r.End < r.Start || r.End >= n {
		return nil, &RangeError{Start: r.Start, End: r.End, Len: n}
	}
	return kernel, nil
}

// Find is the single-threaded scalar scan of data[start..end] with the given
// step.
func Find(data []int32, start, end, step int, target int32) (*Outcome, error) {
	return Search(context.Background(), data, Request{
		Start: start, End: end, Step: step, Target: target,
		Variant: Scalar, Limit: NoLimit,
	}, WithWorkers(1))
}

// VectFind is the single-threaded vector scan. step must be a multiple of
// Lanes; 8 examines every index.
func VectFind(data []int32, start, end, step int, target int32) (*Outcome, error) {
	return Search(context.Background(), data, Request{
		Start: start, End: end, Step: step, Target: target,
		Variant: Vector, Limit: NoLimit,
	}, WithWorkers(1))
}

// ThreadFind is the multithreaded scan with DefaultWorkers workers and an
// optional limit (negative for none).
func ThreadFind(ctx context.Context, data []int32, start, end, step int, target int32, limit int, variant Variant, opts ...Option) (*Outcome, error) {
	return Search(ctx, data, Request{
		Start: start, End: end, Step: step, Target: target,
		Variant: variant, Limit: limit,
	}, append([]Option{WithWorkers(DefaultWorkers)}, opts...)...)
}
