package sco

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RunOnThreads runs n independent Schedulers concurrently, one per
// OS-locked goroutine. This is the multi-thread shape §5 describes: "each
// OS thread that calls start obtains its own independent scheduler
// instance; those instances never touch each other's queues." build is
// called once per thread index, on that thread, to produce the root
// Descriptor to Run there. RunOnThreads blocks until every thread's
// Scheduler has fully drained, then returns the first error any thread
// reported (nil if none did).
//
// The coroutines themselves never cross the goroutine boundary RunOnThreads
// sets up; cross-thread migration is still only possible through
// Detach/Attach (§4.9, §4.10).
func RunOnThreads(n int, build func(thread int) (Descriptor, error)) error {
	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()

			d, err := build(i)
			if err != nil {
				return err
			}
			s := NewScheduler()
			s.Run(d)
			for s.Active() {
				s.Resume(0)
			}
			return nil
		})
	}
	return g.Wait()
}
