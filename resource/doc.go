// Package resource governs the resources a search may consume.
//
// A Controller manages three resource types:
//
//   - Memory: a budget for match buffers and result output (fail-fast)
//   - Slots: a bound on concurrently running searches
//   - IO: a token bucket for throttling result output
//
// # Memory Management
//
// AcquireMemory is non-blocking and returns ErrMemoryLimitExceeded when the
// budget would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30,
//	})
//
//	if err := rc.AcquireMemory(1024 * 1024); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(1024 * 1024)
//
// # Search Slots
//
//	if err := rc.AcquireSlot(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseSlot()
//
// # IO Rate Limiting
//
//	w := resource.NewRateLimitedWriter(ctx, os.Stdout, rc)
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully; they become no-ops.
package resource
