package simd

import "math"

const (
	// Lanes is the number of int32 values one stepped position covers.
	Lanes = 8
	// WideLanes is the block of a dense scan on 512-bit registers: two
	// adjacent 8-lane groups per kernel call.
	WideLanes = 16
)

// Bound once by bindKernels.
var (
	kernelEqualMask8  = equalMask8Generic
	kernelEqualMask16 = equalMask16Generic
	blockLanes        = Lanes
)

// bindKernels selects the per-lane kernels for Generic and the unrolled ones
// otherwise. A dense scan consumes a whole register per call when the
// register is wider than one lane group.
func bindKernels(isa ISA) {
	if isa.RegisterLanes() == 1 {
		kernelEqualMask8 = equalMask8Generic
		kernelEqualMask16 = equalMask16Generic
	} else {
		kernelEqualMask8 = equalMask8Unrolled
		kernelEqualMask16 = equalMask16Unrolled
	}
	blockLanes = max(Lanes, isa.RegisterLanes())
}

// BlockLanes returns how many consecutive values a dense scan (step Lanes)
// should compare per call: Lanes, or WideLanes when EqualMask16 maps to one
// register of the active ISA.
func BlockLanes() int {
	return blockLanes
}

// EqualMask8 compares the first 8 values of v against target lane by lane and
// returns a mask whose bit i is set when lane i is equal.
//
// The comparison is a float32 equality on the raw bit patterns, so NaN
// patterns never match and 0x80000000 matches 0.
//
// SAFETY: Assumes len(v) >= 8. Caller MUST ensure this.
func EqualMask8(v []int32, target int32) uint8 {
	return kernelEqualMask8(v, target)
}

// EqualMask16 is EqualMask8 over the first 16 values of v. Bits 0-7 are the
// mask of v[0:8] and bits 8-15 the mask of v[8:16].
//
// SAFETY: Assumes len(v) >= 16. Caller MUST ensure this.
func EqualMask16(v []int32, target int32) uint16 {
	return kernelEqualMask16(v, target)
}

// equalMask8Generic is the reference kernel.
func equalMask8Generic(v []int32, target int32) uint8 {
	t := math.Float32frombits(uint32(target))
	var mask uint8
	for lane := range Lanes {
		if math.Float32frombits(uint32(v[lane])) == t {
			mask |= 1 << lane
		}
	}
	return mask
}

func equalMask16Generic(v []int32, target int32) uint16 {
	return uint16(equalMask8Generic(v[:Lanes], target)) |
		uint16(equalMask8Generic(v[Lanes:WideLanes], target))<<Lanes
}

// equalMask8Unrolled has no branches or loop-carried state, which lets the
// compiler keep all 8 lanes in registers.
func equalMask8Unrolled(v []int32, target int32) uint8 {
	_ = v[7] // BCE
	t := math.Float32frombits(uint32(target))
	return uint8(laneBit(v[0], t, 0) |
		laneBit(v[1], t, 1) |
		laneBit(v[2], t, 2) |
		laneBit(v[3], t, 3) |
		laneBit(v[4], t, 4) |
		laneBit(v[5], t, 5) |
		laneBit(v[6], t, 6) |
		laneBit(v[7], t, 7))
}

func equalMask16Unrolled(v []int32, target int32) uint16 {
	_ = v[15] // BCE
	t := math.Float32frombits(uint32(target))
	return laneBit(v[0], t, 0) |
		laneBit(v[1], t, 1) |
		laneBit(v[2], t, 2) |
		laneBit(v[3], t, 3) |
		laneBit(v[4], t, 4) |
		laneBit(v[5], t, 5) |
		laneBit(v[6], t, 6) |
		laneBit(v[7], t, 7) |
		laneBit(v[8], t, 8) |
		laneBit(v[9], t, 9) |
		laneBit(v[10], t, 10) |
		laneBit(v[11], t, 11) |
		laneBit(v[12], t, 12) |
		laneBit(v[13], t, 13) |
		laneBit(v[14], t, 14) |
		laneBit(v[15], t, 15)
}

func laneBit(x int32, t float32, lane uint) uint16 {
	var b uint16
	if math.Float32frombits(uint32(x)) == t {
		b = 1
	}
	return b << lane
}
