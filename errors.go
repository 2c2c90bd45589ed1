package vfind

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vfind/internal/partition"
	"github.com/hupe1980/vfind/internal/scan"
	"github.com/hupe1980/vfind/resource"
)

var (
	// ErrInvalidStep is returned when the step is below 1, or when the vector
	// variant is given a step that is not a positive multiple of Lanes.
	ErrInvalidStep = errors.New("invalid step")

	// ErrOutOfRange is returned when start or end lie outside the array or
	// start > end.
	ErrOutOfRange = errors.New("range out of bounds")

	// ErrAllocation is returned when a match buffer or the result cannot be
	// allocated within the configured memory budget.
	ErrAllocation = errors.New("allocation failed")

	// ErrInvalidVariant is returned for an unknown Variant.
	ErrInvalidVariant = errors.New("invalid variant")
)

// StepError describes a rejected step.
//
// It matches ErrInvalidStep with errors.Is.
type StepError struct {
	Step    int
	Variant Variant
	cause   error
}

func (e *StepError) Error() string {
	if e.Variant == Vector {
		return fmt.Sprintf("invalid step %d: vector variant needs a positive multiple of %d", e.Step, Lanes)
	}
	return fmt.Sprintf("invalid step %d: must be at least 1", e.Step)
}

func (e *StepError) Is(target error) bool { return target == ErrInvalidStep }

func (e *StepError) Unwrap() error { return e.cause }

// RangeError describes a range that does not fit the array.
//
// It matches ErrOutOfRange with errors.Is.
type RangeError struct {
	Start int
	End   int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range [%d, %d] out of bounds for length %d", e.Start, e.End, e.Len)
}

func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, resource.ErrMemoryLimitExceeded) {
		return fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	if errors.Is(err, scan.ErrInvalidStep) {
		return fmt.Errorf("%w: %w", ErrInvalidStep, err)
	}
	if errors.Is(err, partition.ErrInvalidRange) {
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}

	return err
}
