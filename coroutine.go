package sco

import (
	"context"
	"time"
)

// Sleep blocks the calling coroutine cooperatively for at least d, yielding
// repeatedly so that other scheduled coroutines on the same Scheduler keep
// making progress while it waits. There is no dedicated timer primitive in
// the scheduler itself (§5): time-based waiting is always layered on top of
// Yield by the caller, exactly as it is here. If ctx was not obtained from
// inside a coroutine's Entry, Yield is a no-op and Sleep busy-waits for d
// without yielding.
func Sleep(ctx context.Context, d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		Yield(ctx)
	}
}
