package sched

import "golang.org/x/sys/windows"

// osThreadID returns the Windows thread id of the calling OS thread, for the
// same diagnostic purpose as its Unix counterpart.
func osThreadID() int {
	return int(windows.GetCurrentThreadId())
}
