// Package scan implements the scalar and vector match scanners.
//
// Both scanners walk a partition.Partition and append matching indices, in
// ascending order, to a Buffer owned by the calling goroutine. A Stopper is
// polled before every kernel call (one stepped position, or one block of a
// dense vector scan) so a coordinator can end the scan early; matches
// recorded before the stop are kept.
//
// The scalar scanner is the ground truth. The vector scanner examines the
// 8 lanes starting at every stepped position with simd.EqualMask8 (or two
// adjacent groups at once with simd.EqualMask16 on wide registers), so it is
// only defined for steps that are multiples of simd.Lanes, and it inherits
// the float-lane correctness boundary documented in package simd.
package scan
