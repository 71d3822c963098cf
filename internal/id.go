package sched

import "sync/atomic"

// nextID is the process-wide coroutine id counter. Ids are drawn from a
// single atomic counter rather than per-thread ranges (§4.2 permits either);
// a shared counter keeps ids unique across Schedulers without requiring each
// Scheduler to know its own index. Ids of terminated coroutines are not
// reclaimed: the counter only grows, which is simpler than tracking reuse and
// cheap enough given it is a 64-bit value.
var nextID int64

// allocID returns a fresh, non-zero coroutine id.
func allocID() int64 {
	return atomic.AddInt64(&nextID, 1)
}
