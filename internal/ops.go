package sched

import (
	"context"
	"runtime"
)

// Yield suspends the calling coroutine and places it at the tail of its
// owning Scheduler's run queue (§4.4). It is a no-op if ctx was not obtained
// from inside a coroutine's Entry.
func Yield(ctx context.Context) {
	c := Current(ctx)
	if c == nil {
		return
	}
	c.owner.yield(c)
}

// Pause suspends the calling coroutine into its owning Scheduler's pause set
// (§4.5). It only runs again once some thread calls Resume with its id. It
// is a no-op if ctx was not obtained from inside a coroutine's Entry.
func Pause(ctx context.Context) {
	c := Current(ctx)
	if c == nil {
		return
	}
	c.owner.pause(c)
}

// Exit terminates the calling coroutine and hands control directly back to
// its owning Scheduler's caller (§4.7), bypassing the run queue. Exit never
// returns: Entry must treat a call to Exit as the end of the coroutine, the
// same way it would treat returning normally. It is a no-op if ctx was not
// obtained from inside a coroutine's Entry.
func Exit(ctx context.Context) {
	c := Current(ctx)
	if c == nil {
		return
	}
	c.owner.exit(c)
	// exit hands control to another goroutine without blocking; stop this
	// one immediately so Entry code following Exit never executes.
	runtime.Goexit()
}

// Go starts a new coroutine as a child of the calling coroutine (§4.3) and
// returns its id.
func Go(ctx context.Context, d Descriptor) int64 {
	c := mustCurrent(ctx)
	return c.owner.spawnChild(c, d).id
}

// ID returns the calling coroutine's id, or 0 if ctx was not obtained from
// inside a coroutine's Entry.
func ID(ctx context.Context) int64 {
	c := Current(ctx)
	if c == nil {
		return 0
	}
	return c.id
}

// UData returns the calling coroutine's opaque user data, or nil if ctx was
// not obtained from inside a coroutine's Entry.
func UData(ctx context.Context) any {
	c := Current(ctx)
	if c == nil {
		return nil
	}
	return c.udata
}

// Detach removes the coroutine named by id from the calling coroutine's
// owning Scheduler and makes it reachable only through the process-wide
// detached registry (§4.9). Detaching the calling coroutine's own id is a
// silent no-op, as is any id that does not name a coroutine paused on this
// Scheduler.
func Detach(ctx context.Context, id int64) {
	c := mustCurrent(ctx)
	if id == c.id {
		log.Trace().Int64("id", id).Msg("sco: a coroutine cannot detach itself")
		return
	}
	c.owner.Detach(id)
}

func mustCurrent(ctx context.Context) *Coroutine {
	c := Current(ctx)
	if c == nil {
		panic("sched: called from outside a coroutine's Entry")
	}
	return c
}
