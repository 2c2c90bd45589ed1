// Package search runs one multithreaded scan: it splits the range, scans the
// partitions concurrently, optionally stops early once enough matches exist,
// and concatenates the per-worker results.
//
// # Early Stop
//
// A Signal holds a cutoff over partition indices; a worker whose index is at
// or above the cutoff stops at its next check. The Watcher lowers the cutoff
// to the first partition j whose prefix of match counts reaches the limit.
// Counts only grow and each worker records the smallest indices of its
// partition first, so the first limit matches of the whole range already lie
// in partitions 0..j. Stopping the others never changes which indices are
// returned, only how much work is done.
//
// Counters are read without locking the workers. A stale snapshot is always
// a sum the true counts have already reached, so it can only delay a stop,
// never trigger one too early. The delay is bounded by one poll interval.
package search
