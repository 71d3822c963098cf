package sched

import "context"

// State is a coroutine's position in the lifecycle state machine described
// in §4.12: scheduled, running, paused, detached, or terminated.
type State int

const (
	// StateScheduled means the coroutine sits in a run queue awaiting its
	// turn.
	StateScheduled State = iota
	// StateRunning means the coroutine currently holds the CPU on its
	// owning Scheduler.
	StateRunning
	// StatePaused means the coroutine sits in its owner's pause set.
	StatePaused
	// StateDetached means the coroutine has no owner and is reachable only
	// through the process-wide detached registry.
	StateDetached
	// StateTerminated means the coroutine has returned or called Exit and
	// is only waiting to be handed to its Cleanup callback.
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateScheduled:
		return "scheduled"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateDetached:
		return "detached"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// MinStackSize is the smallest stack a Descriptor may supply when it chooses
// to supply one at all. Go coroutines run on runtime-managed, dynamically
// growing goroutine stacks rather than the caller-supplied buffer a
// stackful-coroutine primitive in a systems language would need, so Stack is
// optional here; when present it is validated against this minimum and
// otherwise passed through untouched to Cleanup, exactly as an opaque
// caller-owned buffer would be.
const MinStackSize = 16 * 1024

// Descriptor describes a coroutine to be created by Run or Go.
type Descriptor struct {
	// Stack is an optional caller-owned buffer associated with the
	// coroutine. The scheduler never reads, writes, or frees it; it exists
	// solely to be threaded through to Cleanup, matching the contract of
	// the external stack allocator this design assumes. If non-nil it must
	// be at least MinStackSize bytes.
	Stack []byte
	// Entry is invoked exactly once, on the coroutine's own goroutine.
	Entry func(ctx context.Context, udata any)
	// Cleanup is invoked exactly once, after Entry returns or Exit is
	// called, from a context that is guaranteed not to be the coroutine's
	// own goroutine.
	Cleanup func(stack []byte, udata any)
	// UData is an opaque value passed through to Entry and Cleanup.
	UData any
}

// Coroutine is a single scheduled unit of cooperative execution. Coroutine
// records are never allocated by user code; Run and Go are the only
// constructors.
type Coroutine struct {
	id      int64
	stack   []byte
	entry   func(ctx context.Context, udata any)
	cleanup func(stack []byte, udata any)
	udata   any

	ctx *switchContext

	// prev/next are the intrusive run-queue links described in §4.1. They
	// are also used as a sentinel: both are nil exactly when the coroutine
	// is not currently linked into the run queue.
	prev, next *Coroutine

	// owner is the Scheduler this coroutine currently belongs to, or nil
	// while detached.
	owner *Scheduler

	state State
}

// ID returns the coroutine's identity, which is never zero and stable for
// its lifetime.
func (c *Coroutine) ID() int64 {
	return c.id
}

// UData returns the opaque value supplied at creation.
func (c *Coroutine) UData() any {
	return c.udata
}
