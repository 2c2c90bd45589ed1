// Package dataset generates the integer arrays searched by vfind.
//
// # Random Arrays
//
//	rng := dataset.NewRNG(seed)
//	data := rng.Ints(1_000_000, 0, 100)   // values in [0, 100]
//	target := rng.Int32Between(0, 100)
//
// The RNG is seeded explicitly so benchmarks and tests are reproducible.
package dataset
