// Package sco is a minimal, deterministic, fair scheduler for stackful
// coroutines, meant to be embedded in larger concurrent I/O frameworks the
// way tidwall/sco is embedded in C servers: a host thread creates a
// Scheduler, starts coroutines on it, and drives it to completion, while
// coroutines cooperate among themselves with Yield, Pause, and Exit.
//
// Every Scheduler is an explicit, caller-owned value rather than something
// discovered from the calling goroutine: Go gives no portable way to read
// thread-local state, so the one-scheduler-
// per-OS-thread model from the reference design becomes one-Scheduler-per-
// logical-worker here, and it is the embedder's job to only ever drive a
// given Scheduler from one goroutine at a time (or from coroutines it
// started). A coroutine's own operations (Yield, Pause, Exit, Go, ID, UData)
// take the context.Context handed to its Entry function, which is how a
// coroutine finds its way back to the Scheduler that owns it without any
// global or thread-local lookup.
package sco

import (
	"context"

	sched "github.com/gosco/sco/internal"
)

// Descriptor describes a coroutine to be created by a Scheduler's Run method
// or by Go from inside a running coroutine.
type Descriptor = sched.Descriptor

// MinStackSize is the smallest Stack a Descriptor may supply when it chooses
// to supply one at all.
const MinStackSize = sched.MinStackSize

// Scheduler owns the run queue, pause set, and lifecycle of every coroutine
// started on it, corresponding to one logical thread of execution.
type Scheduler struct {
	s *sched.Scheduler
}

// NewScheduler creates an empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{s: sched.NewScheduler()}
}

// Run starts a new coroutine from the host and blocks until control comes
// back to the host: when a coroutine pauses or finishes with the run queue
// empty, when a coroutine yields with nothing else queued, or when a
// coroutine calls Exit. Run does not wait for paused coroutines, so paused or
// still-scheduled coroutines may remain when it returns; Active reports
// whether any do. It returns the started coroutine's id.
func (s *Scheduler) Run(d Descriptor) int64 {
	return s.s.Run(d)
}

// Resume drives this Scheduler from the host. Resume(0) pops and runs the
// head of the run queue, if any, and blocks until control returns to the
// host. A nonzero id moves the coroutine paused under that id back onto the
// run queue without itself switching context; it only actually runs on a
// later Resume(0). Any id that does not name a coroutine currently paused on
// this Scheduler is a silent no-op.
func (s *Scheduler) Resume(id int64) {
	s.s.Resume(id)
}

// Detach removes the coroutine named by id from this Scheduler's pause set
// and makes it reachable only through the process-wide detached registry,
// for later Attach by any Scheduler. Any id that does not name a coroutine
// currently paused on this Scheduler is a silent no-op.
func (s *Scheduler) Detach(id int64) {
	s.s.Detach(id)
}

// Attach claims the coroutine named by id out of the process-wide detached
// registry and adds it to this Scheduler's pause set. It does not run until
// a subsequent Resume(id) on this Scheduler. Any id that does not name a
// currently detached coroutine is a silent no-op.
func (s *Scheduler) Attach(id int64) {
	s.s.Attach(id)
}

// Active reports whether this Scheduler has any scheduled, running, or
// paused coroutine. A host runloop typically calls Resume(0) in a loop while
// Active is true.
func (s *Scheduler) Active() bool {
	return s.s.Active()
}

// InfoScheduled returns the number of coroutines currently queued to run on
// this Scheduler.
func (s *Scheduler) InfoScheduled() int { return s.s.InfoScheduled() }

// InfoRunning returns 1 if a coroutine is currently executing on this
// Scheduler, 0 otherwise.
func (s *Scheduler) InfoRunning() int { return s.s.InfoRunning() }

// InfoPaused returns the number of coroutines currently paused on this
// Scheduler.
func (s *Scheduler) InfoPaused() int { return s.s.InfoPaused() }

// InfoDetached returns the process-wide count of currently detached
// coroutines, across every Scheduler.
func InfoDetached() int { return sched.InfoDetached() }

// InfoMethod names the context-switch primitive backing this package's
// Schedulers.
func InfoMethod() string { return sched.InfoMethod() }

// Yield suspends the calling coroutine, returning it to the tail of its
// owning Scheduler's run queue, and runs whatever is scheduled next; if
// nothing else is scheduled, the caller stays queued and control returns to
// the host. It is a no-op if ctx was not obtained from inside a coroutine's
// Entry.
func Yield(ctx context.Context) { sched.Yield(ctx) }

// Pause suspends the calling coroutine into its owning Scheduler's pause
// set. It only runs again once some Scheduler calls Resume with its id. It
// is a no-op if ctx was not obtained from inside a coroutine's Entry.
func Pause(ctx context.Context) { sched.Pause(ctx) }

// Exit terminates the calling coroutine and hands control directly back to
// its owning Scheduler's caller, without giving the run queue a turn first.
// Exit never returns to its caller: Entry must treat a call to Exit as the
// end of the coroutine, the same as returning normally. It is a no-op if ctx
// was not obtained from inside a coroutine's Entry.
func Exit(ctx context.Context) { sched.Exit(ctx) }

// Go starts a new coroutine as a child of the calling coroutine and returns
// its id. The new coroutine joins the tail of the run queue; the calling
// coroutine takes its own turn through the same run-queue rotation before
// continuing, which is what gives the scheduler its deterministic fairness.
// It panics if ctx was not obtained from inside a coroutine's Entry.
func Go(ctx context.Context, d Descriptor) int64 { return sched.Go(ctx, d) }

// ID returns the calling coroutine's id, or 0 if ctx was not obtained from
// inside a coroutine's Entry.
func ID(ctx context.Context) int64 { return sched.ID(ctx) }

// UData returns the calling coroutine's opaque user data, or nil if ctx was
// not obtained from inside a coroutine's Entry.
func UData(ctx context.Context) any { return sched.UData(ctx) }

// Detach removes the coroutine named by id from the calling coroutine's own
// Scheduler. Detaching the calling coroutine's own id, or any id that does
// not name a coroutine currently paused on that Scheduler, is a silent
// no-op. It panics if ctx was not obtained from inside a coroutine's Entry.
func Detach(ctx context.Context, id int64) { sched.Detach(ctx, id) }
