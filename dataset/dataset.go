package dataset

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/vfind/internal/mem"
)

// RNG encapsulates a seeded random number generator.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Int32Between returns a value in [minVal, maxVal]. The bounds are swapped if
// given in the wrong order.
func (r *RNG) Int32Between(minVal, maxVal int32) int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.between(minVal, maxVal)
}

func (r *RNG) between(minVal, maxVal int32) int32 {
	if maxVal < minVal {
		minVal, maxVal = maxVal, minVal
	}
	span := int64(maxVal) - int64(minVal) + 1
	return int32(int64(minVal) + r.rand.Int63n(span))
}

// Ints returns n values drawn uniformly from [minVal, maxVal]. The slice is
// 64-byte aligned.
func (r *RNG) Ints(n int, minVal, maxVal int32) []int32 {
	data := mem.AllocAlignedInt32(n)
	r.Fill(data, minVal, maxVal)
	return data
}

// Fill overwrites dst with values drawn uniformly from [minVal, maxVal].
func (r *RNG) Fill(dst []int32, minVal, maxVal int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.between(minVal, maxVal)
	}
}

// Plant writes value at every given position of data. Out-of-range positions
// are ignored.
func Plant(data []int32, value int32, positions ...int) {
	for _, p := range positions {
		if p >= 0 && p < len(data) {
			data[p] = value
		}
	}
}
