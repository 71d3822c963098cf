package sched

import "context"

// Scheduler is the run queue, pause set, and bookkeeping for every coroutine
// owned by one logical thread of execution (§3, "per-thread scheduler
// state"). Go gives no portable way to pin a goroutine to an OS thread and
// detect that affinity automatically, so rather than the host-thread-local
// lookup the original design assumes, a Scheduler is an explicit value: the
// caller creates one per logical thread and is responsible for only ever
// driving it from that thread (or from coroutines it has itself started).
// Nothing inside a Scheduler is synchronized, by design: per §5, no
// per-thread data structure is ever touched from a second thread, and the
// only cross-thread handoff goes through the process-wide detached registry.
type Scheduler struct {
	run      runQueue
	pauseSet map[int64]*Coroutine

	// current is the coroutine presently executing on this Scheduler, or
	// nil when control rests with the host/runloop.
	current *Coroutine

	// callerCtx is the context of whichever host-side call (Run or
	// Resume(0)) is presently blocked waiting for this Scheduler to drain
	// or yield control back.
	callerCtx *switchContext

	// pendingCleanup holds a just-terminated coroutine until the next
	// context to run inspects and clears it, guaranteeing Cleanup never
	// executes on the stack it is releasing (§4.8).
	pendingCleanup *Coroutine
}

// NewScheduler creates an empty Scheduler, ready to have Run called on it.
func NewScheduler() *Scheduler {
	return &Scheduler{
		pauseSet:  make(map[int64]*Coroutine),
		callerCtx: newSwitchContext(),
	}
}

// coroutineKey is the context.Context key under which a coroutine's own
// record is stored for the duration of its Entry call.
type coroutineKey struct{}

// Current extracts the coroutine running on ctx, or nil if ctx was not
// derived from inside a coroutine's Entry.
func Current(ctx context.Context) *Coroutine {
	c, _ := ctx.Value(coroutineKey{}).(*Coroutine)
	return c
}

func (s *Scheduler) newCoroutine(d Descriptor) *Coroutine {
	if d.Entry == nil {
		panic("sched: descriptor Entry must not be nil")
	}
	if d.Stack != nil && len(d.Stack) < MinStackSize {
		panic("sched: stack is smaller than MinStackSize")
	}
	return &Coroutine{
		id:      allocID(),
		stack:   d.Stack,
		entry:   d.Entry,
		cleanup: d.Cleanup,
		udata:   d.UData,
		ctx:     newSwitchContext(),
		owner:   s,
	}
}

// drainPendingCleanup runs and clears any cleanup left by the coroutine that
// most recently terminated on this Scheduler. It must be called as the first
// thing done in any context that has just been switched into.
func (s *Scheduler) drainPendingCleanup() {
	c := s.pendingCleanup
	if c == nil {
		return
	}
	s.pendingCleanup = nil
	if c.cleanup != nil {
		c.cleanup(c.stack, c.udata)
	}
	log.Trace().Int64("id", c.id).Msg("sco: coroutine cleaned up")
}

func (s *Scheduler) switchTo(from, to *switchContext) {
	switchTo(from, to)
	s.drainPendingCleanup()
}

// Run starts a new coroutine from the host/runloop (§4.3, the non-coroutine
// branch of start). It blocks until control comes back to the host: when a
// coroutine pauses or finishes with the run queue empty, when a coroutine
// yields with nothing else queued, or when a coroutine calls Exit. Run does
// not wait for paused coroutines, so paused or still-scheduled coroutines may
// remain when it returns; Active reports whether any do.
func (s *Scheduler) Run(d Descriptor) int64 {
	root := s.newCoroutine(d)
	root.state = StateRunning
	s.current = root
	log.Trace().Int64("id", root.id).Int("os_thread", osThreadID()).Msg("sco: scheduler entering Run")
	root.ctx.launch(func() { s.runEntry(root) })
	s.switchTo(s.callerCtx, root.ctx)
	return root.id
}

// runEntry is the trampoline executed on a freshly launched coroutine's own
// goroutine. It supplies the context.Context that makes Current, Yield,
// Pause, Exit, Go, and UData work from inside Entry, and performs the
// mandatory off-stack hand-off once Entry returns naturally.
func (s *Scheduler) runEntry(c *Coroutine) {
	s.drainPendingCleanup()
	ctx := context.WithValue(context.Background(), coroutineKey{}, c)
	c.entry(ctx, c.udata)
	// c may have been detached and attached elsewhere since it was launched;
	// it finishes on whichever Scheduler owns it now.
	c.owner.finish(c, false)
}

// finish transitions a coroutine to terminated and hands off to whatever
// runs next: the queue head, unless forceCaller is set (Exit) or the queue
// is empty, in which case control returns to the host.
func (s *Scheduler) finish(c *Coroutine, forceCaller bool) {
	c.state = StateTerminated
	s.pendingCleanup = c
	var to *switchContext
	if forceCaller {
		s.current = nil
		to = s.callerCtx
	} else if next := s.run.popHead(); next != nil {
		next.state = StateRunning
		s.current = next
		to = next.ctx
	} else {
		s.current = nil
		to = s.callerCtx
	}
	handOff(to)
}

// spawnChild implements start-from-within-a-coroutine (§4.3). The new
// coroutine joins the tail of the run queue, and the parent then takes its
// own turn through the same rotation as Yield: this is the only way to
// reproduce the deterministic ABCDEFGH interleaving in §8 given a run queue
// that already holds other work, since a child that always preempted its
// parent immediately would starve whatever was already queued ahead of it.
func (s *Scheduler) spawnChild(parent *Coroutine, d Descriptor) *Coroutine {
	child := s.newCoroutine(d)
	child.state = StateScheduled
	child.ctx.launch(func() { s.runEntry(child) })
	s.run.pushTail(child)
	s.yield(parent)
	return child
}

// yield implements §4.4: self goes to the tail of the run queue, and the
// coroutine at the head takes over. If that head is self again (nothing else
// was queued), self stays scheduled and control returns to the host instead.
func (s *Scheduler) yield(self *Coroutine) {
	self.state = StateScheduled
	s.run.pushTail(self)
	next := s.run.popHead()
	var to *switchContext
	if next == self {
		// Nothing else was scheduled: leave self queued for the next host
		// resume and hand control back to the caller instead of resuming
		// self in place.
		s.run.pushTail(self)
		s.current = nil
		to = s.callerCtx
	} else {
		next.state = StateRunning
		s.current = next
		to = next.ctx
	}
	s.switchTo(self.ctx, to)
}

// pause implements §4.5: self moves to the pause set and is only reachable
// again via a successful Resume(id).
func (s *Scheduler) pause(self *Coroutine) {
	self.state = StatePaused
	s.pauseSet[self.id] = self
	next := s.run.popHead()
	var to *switchContext
	if next == nil {
		s.current = nil
		to = s.callerCtx
	} else {
		next.state = StateRunning
		s.current = next
		to = next.ctx
	}
	switchTo(self.ctx, to)
	// While paused, self may have been detached and attached to another
	// Scheduler; the cleanup slot to drain is that of its current owner.
	self.owner.drainPendingCleanup()
}

// exit implements §4.7: self terminates and control returns directly to the
// caller, bypassing the run queue entirely.
func (s *Scheduler) exit(self *Coroutine) {
	s.finish(self, true)
}

// ResumeZero implements the id==0 branch of §4.6: pop the run queue head, if
// any, and enter it from the host/runloop.
func (s *Scheduler) ResumeZero() {
	next := s.run.popHead()
	if next == nil {
		return
	}
	next.state = StateRunning
	s.current = next
	s.switchTo(s.callerCtx, next.ctx)
}

// Resume implements §4.6. id==0 is the special runloop-driven resume;
// nonzero ids move a paused coroutine owned by this Scheduler back onto the
// run queue without themselves switching context.
func (s *Scheduler) Resume(id int64) {
	if id == 0 {
		s.ResumeZero()
		return
	}
	c, ok := s.pauseSet[id]
	if !ok {
		log.Trace().Int64("id", id).Msg("sco: resume of unknown or non-local id ignored")
		return
	}
	delete(s.pauseSet, id)
	c.state = StateScheduled
	s.run.pushTail(c)
}

// Detach implements §4.9. id must name a coroutine paused on this Scheduler;
// any other case, including id naming the calling coroutine itself, is a
// silent no-op.
func (s *Scheduler) Detach(id int64) {
	c, ok := s.pauseSet[id]
	if !ok {
		log.Trace().Int64("id", id).Msg("sco: detach of unknown or non-paused id ignored")
		return
	}
	delete(s.pauseSet, id)
	c.owner = nil
	c.state = StateDetached
	detached.publish(c)
}

// Attach implements §4.10. id must name a currently detached coroutine; any
// other case is a silent no-op. The coroutine does not run until Resume(id)
// is subsequently called on this Scheduler.
func (s *Scheduler) Attach(id int64) {
	c := detached.take(id)
	if c == nil {
		log.Trace().Int64("id", id).Msg("sco: attach of unknown or non-detached id ignored")
		return
	}
	c.owner = s
	c.state = StatePaused
	s.pauseSet[id] = c
}

// Active reports whether this Scheduler has any scheduled, running, or
// paused coroutine.
func (s *Scheduler) Active() bool {
	return s.run.len()+len(s.pauseSet)+boolToInt(s.current != nil) > 0
}

// InfoScheduled returns the number of coroutines currently queued to run.
func (s *Scheduler) InfoScheduled() int { return s.run.len() }

// InfoRunning returns 1 if a coroutine is currently executing on this
// Scheduler, 0 otherwise.
func (s *Scheduler) InfoRunning() int { return boolToInt(s.current != nil) }

// InfoPaused returns the number of coroutines currently in the pause set.
func (s *Scheduler) InfoPaused() int { return len(s.pauseSet) }

// InfoDetached returns the process-wide count of detached coroutines.
func InfoDetached() int { return detached.count() }

// InfoMethod names the context-switch primitive backing this package.
func InfoMethod() string { return "goroutine" }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
