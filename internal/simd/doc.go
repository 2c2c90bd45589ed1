// Package simd provides the lane-parallel comparison kernels behind the
// vector scan.
//
// # ISA Selection
//
// Runtime CPU feature detection picks an ISA once at init:
//
//   - x86-64: AVX-512, AVX2
//   - ARM64: NEON
//
// The ISA decides two things: Generic binds the per-lane reference kernels,
// every other ISA the unrolled ones; and on 512-bit registers a dense scan
// compares WideLanes values per call with EqualMask16 instead of Lanes with
// EqualMask8 (BlockLanes). Set VFIND_SIMD=generic to force the fallback.
//
// # Lane Semantics
//
// Every kernel compares consecutive int32 values against a broadcast target
// by re-interpreting the raw bits as IEEE-754 float32 lanes, exactly as a
// packed float compare instruction does. Bit patterns in the NaN encoding
// range (above 0x7F800000) never compare equal, and 0x80000000 aliases 0
// (-0.0 == +0.0). Results are identical on every ISA.
//
// # Operations
//
//   - EqualMask8, EqualMask16: lane equality masks
//   - Popcount, Popcount16: table-driven set-bit counts of a mask
package simd
