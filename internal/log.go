package sched

import "github.com/rs/zerolog"

// log is the package-wide logger used to trace scheduling events that the
// public API otherwise reports nowhere: the silent no-ops called out in §7
// and §9 (resuming an id that is unknown, running, or owned by another
// thread; detaching an id that is not paused on the current thread, and so
// on). None of these are errors a caller can act on, but they are exactly
// the kind of thing worth a low-level trace line when a system embedding the
// scheduler misbehaves. Logging is disabled (zerolog.Nop) until SetLogger is
// called.
var log = zerolog.Nop()

// SetLogger installs l as the scheduler's logger. It is not safe to call
// concurrently with scheduling operations.
func SetLogger(l zerolog.Logger) {
	log = l
}
