package scan

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vfind/internal/partition"
	"github.com/hupe1980/vfind/internal/simd"
)

// ErrInvalidStep is returned when the vector scanner is given a step that is
// not a positive multiple of simd.Lanes.
var ErrInvalidStep = errors.New("scan: step must be a positive multiple of 8")

// Stopper is polled before every kernel call.
type Stopper interface {
	Stopped() bool
}

type never struct{}

func (never) Stopped() bool { return false }

// Kernel scans one partition into buf. It returns true if the partition was
// exhausted and false if stop ended the scan early.
type Kernel func(data []int32, p partition.Partition, target int32, buf *Buffer, stop Stopper) (bool, error)

var (
	_ Kernel = ScalarInto
	_ Kernel = VectorInto
)

// CheckVectorStep validates a step for the vector scanner.
func CheckVectorStep(step int) error {
	if step < 1 || step%simd.Lanes != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidStep, step)
	}
	return nil
}

// ScalarInto appends every stepped position i of p with data[i] == target.
func ScalarInto(data []int32, p partition.Partition, target int32, buf *Buffer, stop Stopper) (bool, error) {
	if stop == nil {
		stop = never{}
	}

	for i := p.Start; i <= p.End; i += p.Step {
		if stop.Stopped() {
			return false, nil
		}
		if data[i] == target {
			if err := buf.Append(i); err != nil {
				return false, err
			}
		}
		// i+Step may overflow.
		if p.End-i < p.Step {
			break
		}
	}
	return true, nil
}

// VectorInto compares the 8 lanes starting at every stepped position of p
// and appends matching lanes in ascending order. Lanes past p.End are
// compared one by one.
//
// With step simd.Lanes the windows are adjacent, and the scan compares
// simd.BlockLanes values per kernel call; stop is then polled once per block.
func VectorInto(data []int32, p partition.Partition, target int32, buf *Buffer, stop Stopper) (bool, error) {
	if err := CheckVectorStep(p.Step); err != nil {
		return false, err
	}
	if stop == nil {
		stop = never{}
	}

	g := p.Start
	if p.Step == simd.Lanes && simd.BlockLanes() == simd.WideLanes {
		for p.End-g >= simd.WideLanes-1 {
			if stop.Stopped() {
				return false, nil
			}
			if mask := simd.EqualMask16(data[g:g+simd.WideLanes], target); mask != 0 {
				if err := buf.Reserve(simd.Popcount16(mask)); err != nil {
					return false, err
				}
				buf.appendMask(g, mask)
			}
			g += simd.WideLanes
		}
	}

	for p.End-g >= simd.Lanes-1 {
		if stop.Stopped() {
			return false, nil
		}
		if mask := simd.EqualMask8(data[g:g+simd.Lanes], target); mask != 0 {
			if err := buf.Reserve(simd.Popcount(mask)); err != nil {
				return false, err
			}
			buf.appendMask(g, uint16(mask))
		}
		// The next stepped position lies past p.End (or past MaxInt).
		if p.End-g < p.Step {
			return true, nil
		}
		g += p.Step
	}

	// Tail shorter than one lane group.
	if g <= p.End {
		if stop.Stopped() {
			return false, nil
		}
		for i := g; i <= p.End; i++ {
			if data[i] == target {
				if err := buf.Append(i); err != nil {
					return false, err
				}
			}
		}
	}
	return true, nil
}

// Scalar returns every i = start, start+step, ... <= end with
// data[i] == target.
func Scalar(data []int32, start, end, step int, target int32) []int {
	if step < 1 {
		return nil
	}
	buf := NewBuffer(nil)
	_, _ = ScalarInto(data, partition.Partition{Start: start, End: end, Step: step}, target, buf, nil)
	return buf.Indices()
}

// Vector is the single-threaded vector scan over [start, end].
func Vector(data []int32, start, end, step int, target int32) ([]int, error) {
	buf := NewBuffer(nil)
	if _, err := VectorInto(data, partition.Partition{Start: start, End: end, Step: step}, target, buf, nil); err != nil {
		return nil, err
	}
	return buf.Indices(), nil
}
