package sched

import "golang.org/x/sys/unix"

// osThreadID returns the kernel thread id of the calling OS thread. It is
// purely diagnostic: Scheduler never uses it to make scheduling decisions,
// only to annotate log lines so that a host running many Schedulers across
// runtime.LockOSThread'd goroutines can tell which kernel thread a given
// Scheduler's lazy initialization landed on.
func osThreadID() int {
	return unix.Gettid()
}
