//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func detectISAs() []ISA {
	var isas []ISA
	if cpu.X86.HasAVX512F {
		isas = append(isas, AVX512)
	}
	if cpu.X86.HasAVX2 {
		isas = append(isas, AVX2)
	}
	return append(isas, Generic)
}
