package kindling

import (
	"sync"
)

// nopLocker is the storage family for single-goroutine worlds.
type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}

// A World is a single logical scheduling domain: it owns the execution
// stacks used for implicit dependency capture, the run queue that batches
// re-runs, and the registry backing the debug subscription graph.
//
// Signals, triggers and effects belong to exactly one World and must not
// be mixed across worlds.
type World struct {
	// Guards stacks, queue and registry. User closures never run while the
	// lock is held, so effects are free to re-enter the world.
	mu sync.Locker

	// shared selects blocking cell guards to match the mutex above.
	shared bool

	// Execution stacks keyed by goroutine id. Dependency capture must see
	// only frames pushed by the reading goroutine; one global stack would
	// let concurrent effect runs subscribe each other's dependencies.
	stacks map[int64]*effectStack

	queue    runQueue
	registry map[uint64]WeakTrigger
}

// A WorldOption configures a World at construction time.
type WorldOption func(*World)

// WithLocking selects the shared storage family: world state is guarded
// by a mutex and signal cells block on conflicting borrows instead of
// panicking, so the World and its signals can be used from several
// goroutines. Scheduling is still single-drain-at-a-time; queued effects
// never run in parallel.
func WithLocking() WorldOption {
	return func(w *World) {
		w.mu = &sync.Mutex{}
		w.shared = true
	}
}

// NewWorld creates a scheduling domain. The default storage family is
// unlocked and suitable for a single goroutine; see WithLocking.
func NewWorld(opts ...WorldOption) *World {
	w := &World{
		mu:       nopLocker{},
		stacks:   make(map[int64]*effectStack),
		queue:    newRunQueue(),
		registry: make(map[uint64]WeakTrigger),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// newCellGuard picks the borrow primitive matching the world's storage
// family.
func (w *World) newCellGuard() cellGuard {
	if w.shared {
		return &blockingBorrows{}
	}
	return &panicBorrows{}
}

// Batch opens a batching scope around fn. Writes inside fn enqueue their
// subscribers as usual but the queue drains only once, when the scope
// ends. Batches nest; only the outermost one drains.
func (w *World) Batch(fn func()) {
	w.mu.Lock()
	w.queue.incRef()
	w.mu.Unlock()
	defer w.releaseBatch()
	fn()
}

// Untracked runs fn with dependency gathering paused: signals and triggers
// read inside fn do not subscribe the currently-running effect.
func (w *World) Untracked(fn func()) {
	w.pushFrame(stackFrame{paused: true})
	defer w.popFrame()
	fn()
}

func (w *World) pushFrame(f stackFrame) {
	gid := goroutineID()
	w.mu.Lock()
	s := w.stacks[gid]
	if s == nil {
		s = &effectStack{}
		w.stacks[gid] = s
	}
	s.push(f)
	w.mu.Unlock()
}

func (w *World) popFrame() {
	gid := goroutineID()
	w.mu.Lock()
	defer w.mu.Unlock()
	s := w.stacks[gid]
	if s == nil {
		panic(ErrStackImbalance)
	}
	s.pop()
	if len(s.frames) == 0 {
		delete(w.stacks, gid)
	}
}

func (w *World) runningEffect() (WeakEffect, bool) {
	gid := goroutineID()
	w.mu.Lock()
	defer w.mu.Unlock()
	s := w.stacks[gid]
	if s == nil {
		return WeakEffect{}, false
	}
	return s.top()
}

// releaseBatch retires one batching reference and drains the queue if this
// was the outermost scope.
func (w *World) releaseBatch() {
	w.mu.Lock()
	permit := w.queue.decRef()
	w.mu.Unlock()
	if permit {
		w.drain()
	}
}

// drain re-runs every queued effect in insertion order. Effects run
// without the world lock and may enqueue more work; the loop picks those
// entries up too, while decRef's draining flag keeps any nested release
// from starting a second drain.
func (w *World) drain() {
	w.mu.Lock()
	if w.queue.running {
		w.mu.Unlock()
		panic(ErrQueueReentrancy)
	}
	w.queue.running = true
	w.mu.Unlock()

	// A panicking action unwinds through here; retire the permit so the
	// world is not left wedged behind a dead drain.
	retired := false
	defer func() {
		if retired {
			return
		}
		w.mu.Lock()
		w.queue.retirePermit()
		w.mu.Unlock()
	}()

	for {
		w.mu.Lock()
		item, ok := w.queue.pop()
		if !ok {
			// Retire in the same locked step that observed emptiness. A
			// push landing after this point sees draining false, so its
			// release can take a fresh permit; one landing before it was
			// popped above. Retiring later would strand such entries.
			w.queue.retirePermit()
			w.mu.Unlock()
			retired = true
			return
		}
		w.mu.Unlock()

		effect, alive := item.sub.Upgrade()
		if !alive {
			continue
		}
		effect.Run()
	}
}

func (w *World) register(t Trigger) {
	w.mu.Lock()
	w.registry[t.state.id] = t.Weak()
	w.mu.Unlock()
}
