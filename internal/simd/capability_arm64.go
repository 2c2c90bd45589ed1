//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func detectISAs() []ISA {
	if cpu.ARM64.HasASIMD {
		return []ISA{NEON, Generic}
	}
	return []ISA{Generic}
}
