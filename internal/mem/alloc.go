package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of allocated arrays (one cache line, and
// the width of an AVX-512 register).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocAlignedInt32 allocates a zeroed int32 slice of n elements with 64-byte
// alignment, so every group of Lanes values starting at a multiple of 16
// shares one cache line.
func AllocAlignedInt32(n int) []int32 {
	if n <= 0 {
		return nil
	}
	byteSlice := AllocAligned(n * 4)
	ptr := unsafe.Pointer(&byteSlice[0])  //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*int32)(ptr), n) //nolint:gosec // unsafe is required for memory alignment
}
