//go:build !amd64 && !arm64

package simd

func detectISAs() []ISA {
	return []ISA{Generic}
}
