// Package partition splits a stepped index range into contiguous sub-ranges,
// one per worker.
//
// Contiguous assignment keeps each worker's loads within its own cache lines;
// interleaving positions across workers would bounce lines between cores.
package partition

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when a range cannot be split.
var ErrInvalidRange = errors.New("partition: invalid range")

// Partition is a contiguous, step-aligned sub-range of a parent range.
//
// Start is a stepped position of the parent. End is the inclusive index
// bound: the next partition's Start-1, or the parent End for the last
// partition. Partitions of one Split tile the parent range with no gaps or
// overlaps.
type Partition struct {
	Index int
	Start int
	End   int
	Step  int
}

// Positions returns the number of stepped positions in the partition.
func (p Partition) Positions() int {
	if p.End < p.Start {
		return 0
	}
	return (p.End-p.Start)/p.Step + 1
}

// Last returns the last stepped position in the partition.
func (p Partition) Last() int {
	return p.Start + (p.Positions()-1)*p.Step
}

// Contains reports whether i is a stepped position of the partition.
func (p Partition) Contains(i int) bool {
	return i >= p.Start && i <= p.End && (i-p.Start)%p.Step == 0
}

func (p Partition) String() string {
	return fmt.Sprintf("#%d[%d..%d/%d]", p.Index, p.Start, p.End, p.Step)
}

// Positions returns the number of stepped positions in [start, end].
func Positions(start, end, step int) int {
	if step < 1 || end < start {
		return 0
	}
	return (end-start)/step + 1
}

// Split divides [start, end] with the given step into at most workers
// partitions whose position counts differ by at most one. Fewer partitions
// are returned when the range has fewer positions than workers, so no
// partition is empty.
func Split(start, end, step, workers int) ([]Partition, error) {
	switch {
	case step < 1:
		return nil, fmt.Errorf("%w: step %d", ErrInvalidRange, step)
	case end < start:
		return nil, fmt.Errorf("%w: start %d > end %d", ErrInvalidRange, start, end)
	case workers < 1:
		return nil, fmt.Errorf("%w: %d workers", ErrInvalidRange, workers)
	}

	m := Positions(start, end, step)
	w := min(workers, m)

	parts := make([]Partition, w)
	for t := range w {
		first := t * m / w
		next := (t + 1) * m / w
		p := Partition{
			Index: t,
			Start: start + first*step,
			End:   start + next*step - 1,
			Step:  step,
		}
		if t == w-1 {
			p.End = end
		}
		parts[t] = p
	}

	return parts, nil
}
