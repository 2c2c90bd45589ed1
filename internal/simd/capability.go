package simd

import (
	"os"
	"slices"
	"strings"
)

// ISA is an instruction set the lane kernels can be bound to.
type ISA uint8

const (
	// Generic compares one lane at a time.
	Generic ISA = iota
	// NEON is ARM64 Advanced SIMD (128-bit registers).
	NEON
	// AVX2 is x86-64 AVX2 (256-bit registers).
	AVX2
	// AVX512 is x86-64 AVX-512 Foundation (512-bit registers).
	AVX512
)

// EnvOverride names the environment variable that forces an ISA.
const EnvOverride = "VFIND_SIMD"

// isaSpecs describes what binding each ISA changes. registerLanes is the
// number of int32 lanes one vector register holds; 1 selects the per-lane
// kernels.
var isaSpecs = [...]struct {
	name          string
	registerLanes int
}{
	Generic: {"generic", 1},
	NEON:    {"neon", 4},
	AVX2:    {"avx2", 8},
	AVX512:  {"avx512", 16},
}

func (i ISA) String() string {
	if int(i) < len(isaSpecs) {
		return isaSpecs[i].name
	}
	return "unknown"
}

// RegisterLanes returns the number of int32 lanes in one register of i.
func (i ISA) RegisterLanes() int {
	if int(i) < len(isaSpecs) {
		return isaSpecs[i].registerLanes
	}
	return 1
}

// ParseISA parses a case-insensitive ISA name.
func ParseISA(s string) (ISA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, spec := range isaSpecs {
		if spec.name == s {
			return ISA(i), true
		}
	}
	return Generic, false
}

// Package-level state, written during init and by SetISA.
var (
	activeISA   ISA
	hasOverride bool

	// supported lists the ISAs of this CPU, best first. Generic is last.
	supported []ISA
)

func init() {
	supported = detectISAs()
	initCapabilities(os.Getenv(EnvOverride))
}

// initCapabilities selects the best supported ISA, or the override if the
// CPU supports it, and binds the kernels.
func initCapabilities(override string) {
	activeISA = supported[0]
	hasOverride = false

	if isa, ok := ParseISA(override); ok && slices.Contains(supported, isa) {
		activeISA = isa
		hasOverride = true
	}

	bindKernels(activeISA)
}

// ActiveISA returns the ISA the kernels are bound to.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if VFIND_SIMD selected the active ISA.
func IsOverridden() bool {
	return hasOverride
}

// Supported returns the ISAs detected on this CPU, best first.
func Supported() []ISA {
	return slices.Clone(supported)
}

// SetISA binds the kernels of isa regardless of CPU support and returns a
// function restoring the previous binding. The kernels are portable Go, so
// every ISA runs everywhere; this lets tests and benchmarks compare them.
// Not safe for use concurrently with scans.
func SetISA(isa ISA) (restore func()) {
	prevISA, prevOverride := activeISA, hasOverride
	activeISA, hasOverride = isa, true
	bindKernels(isa)
	return func() {
		activeISA, hasOverride = prevISA, prevOverride
		bindKernels(prevISA)
	}
}
