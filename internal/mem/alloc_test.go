package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Equal(t, uintptr(0), addr%Alignment, "Address %d should be aligned to %d for size %d", addr, Alignment, size)
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestAllocAlignedInt32(t *testing.T) {
	sizes := []int{1, 7, 8, 16, 17, 100, 1024}

	for _, size := range sizes {
		buf := AllocAlignedInt32(size)
		assert.Len(t, buf, size)

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Equal(t, uintptr(0), addr%Alignment, "Address %d should be aligned to %d for size %d", addr, Alignment, size)
		for _, v := range buf {
			assert.Zero(t, v)
		}
	}

	assert.Nil(t, AllocAlignedInt32(0))
	assert.Nil(t, AllocAlignedInt32(-1))
}
