package simd

import (
	"math/bits"
	"testing"
)

func TestPopcount(t *testing.T) {
	for i := range 256 {
		want := bits.OnesCount8(uint8(i))
		if got := Popcount(uint8(i)); got != want {
			t.Fatalf("Popcount(%#02x) = %d, want %d", i, got, want)
		}
	}
}

func TestPopcountBoundaries(t *testing.T) {
	tests := []struct {
		mask uint8
		want int
	}{
		{0x00, 0},
		{0x01, 1},
		{0x80, 1},
		{0x0F, 4},
		{0xAA, 4},
		{0xFF, 8},
	}
	for _, tt := range tests {
		if got := Popcount(tt.mask); got != tt.want {
			t.Errorf("Popcount(%#02x) = %d, want %d", tt.mask, got, tt.want)
		}
	}
}

func TestPopcount16(t *testing.T) {
	for i := range 1 << 16 {
		want := bits.OnesCount16(uint16(i))
		if got := Popcount16(uint16(i)); got != want {
			t.Fatalf("Popcount16(%#04x) = %d, want %d", i, got, want)
		}
	}
}
