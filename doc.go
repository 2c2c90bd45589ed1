// Package vfind finds every occurrence of an integer in a large in-memory
// []int32 and compares three ways of doing it.
//
// # Quick Start
//
//	data := []int32{5, 3, 5, 5, 2, 5}
//	out, _ := vfind.Search(ctx, data, vfind.Request{
//	    End:    len(data) - 1,
//	    Step:   1,
//	    Target: 5,
//	    Limit:  vfind.NoLimit,
//	})
//	fmt.Println(out.Count, out.Indices) // 4 [0 2 3 5]
//
// # Strategies
//
//	// 1. SCALAR: one position at a time, the ground truth.
//	out, _ := vfind.Find(data, 0, len(data)-1, 1, target)
//
//	// 2. VECTOR: 8 lanes per comparison. Step 8 covers every index.
//	out, _ := vfind.VectFind(data, 0, len(data)-1, 8, target)
//
//	// 3. THREADED: vector kernel on 8 contiguous partitions.
//	out, _ := vfind.ThreadFind(ctx, data, 0, len(data)-1, 8, target, vfind.NoLimit, vfind.Vector)
//
// # Limits and Early Stop
//
// A non-negative Limit returns the Limit smallest matching indices. In a
// multithreaded search a watcher polls the per-worker match counters and
// stops every partition after the first prefix of partitions that already
// holds Limit matches. How much work is skipped depends on timing; the
// returned indices do not.
//
// # Vector Correctness Boundary
//
// The vector kernel compares raw bits as float32 lanes. Targets or values in
// the NaN encoding range (above 0x7F800000) are not reliably found, and
// 0x80000000 compares equal to 0. For all values in [0, 0x7F800000] the
// vector result equals the scalar result over the same lanes.
//
// # Errors
//
// Step validity is checked before any work: ErrInvalidStep. A range outside
// the array is ErrOutOfRange. A memory budget set with
// WithResourceController that cannot hold the matches is ErrAllocation.
package vfind
