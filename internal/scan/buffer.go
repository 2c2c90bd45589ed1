package scan

import (
	"sync/atomic"
	"unsafe"

	"github.com/hupe1980/vfind/resource"
	"golang.org/x/sys/cpu"
)

const (
	indexSize  = int64(unsafe.Sizeof(int(0)))
	minBufSize = 16
)

// Buffer holds the matches found by one worker.
//
// Only the owning goroutine appends. Count may be read by any goroutine at
// any time: it is published after the indices it covers are written and never
// decreases.
type Buffer struct {
	count atomic.Int64
	_     cpu.CacheLinePad

	idx      []int
	mem      *resource.Controller
	reserved int64
}

// NewBuffer creates an empty Buffer that accounts its growth against mem.
// A nil controller disables accounting.
func NewBuffer(mem *resource.Controller) *Buffer {
	return &Buffer{mem: mem}
}

// Count returns the number of published matches.
func (b *Buffer) Count() int {
	return int(b.count.Load())
}

// Indices returns the recorded matches. Callers other than the owner must
// only use it after the owner has finished.
func (b *Buffer) Indices() []int {
	return b.idx
}

// Reserve makes room for n more matches. Growth is geometric, so a sequence
// of single-match reservations costs amortized O(1) each.
func (b *Buffer) Reserve(n int) error {
	need := len(b.idx) + n
	if need <= cap(b.idx) {
		return nil
	}

	newCap := max(2*cap(b.idx), need, minBufSize)
	delta := int64(newCap-cap(b.idx)) * indexSize
	if err := b.mem.AcquireMemory(delta); err != nil {
		return err
	}
	b.reserved += delta

	grown := make([]int, len(b.idx), newCap)
	copy(grown, b.idx)
	b.idx = grown
	return nil
}

// Append records a single match and publishes it.
func (b *Buffer) Append(i int) error {
	if err := b.Reserve(1); err != nil {
		return err
	}
	b.idx = append(b.idx, i)
	b.publish()
	return nil
}

// appendMask records g+lane for every set lane of mask. The caller reserved
// room for them.
func (b *Buffer) appendMask(g int, mask uint16) {
	for lane := g; mask != 0; lane++ {
		if mask&1 != 0 {
			b.idx = append(b.idx, lane)
		}
		mask >>= 1
	}
	b.publish()
}

func (b *Buffer) publish() {
	b.count.Store(int64(len(b.idx)))
}

// Release returns the buffer's memory reservation to its controller. The
// indices stay readable.
func (b *Buffer) Release() {
	b.mem.ReleaseMemory(b.reserved)
	b.reserved = 0
}
