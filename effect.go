package kindling

import (
	"sync/atomic"
	"weak"
)

type effectState struct {
	world     *World
	action    func()
	id        uint64
	definedAt string

	// While set, runs are permitted but the action itself is skipped.
	suppressed atomic.Bool

	// Stopped effects are inert: upgrades fail and triggers skip them.
	stopped atomic.Bool
}

// An Effect is a re-runnable computation. It runs once eagerly on
// construction; any Signal or Trigger read during a run subscribes the
// effect, and it then re-runs whenever one of those dependencies fires.
//
// Effect is a shared handle: copying it shares the underlying state, and
// two handles are equal exactly when they share state.
type Effect struct {
	state *effectState
}

// NewEffect creates an effect and synchronously runs action once to seed
// its dependency set.
func NewEffect(w *World, action func()) Effect {
	st := &effectState{
		world:     w,
		action:    action,
		definedAt: callerLoc(1),
	}
	st.id = newID("effect", st.definedAt)
	e := Effect{state: st}
	e.Run()
	return e
}

// Run executes the effect's action with the effect on top of the world's
// execution stack, so dependencies read during the run re-subscribe it.
// The stack is popped even if the action panics. Suppressed and stopped
// effects still push and pop, but skip the action.
func (e Effect) Run() {
	st := e.state
	st.world.pushFrame(stackFrame{sub: e.Weak()})
	defer st.world.popFrame()
	if st.suppressed.Load() || st.stopped.Load() {
		return
	}
	st.action()
}

// Suppressed runs fn with the effect's suppression flag set, restoring the
// previous flag value afterwards so suppressions nest correctly. Writes
// performed inside fn will not schedule this effect, even through triggers
// it subscribes to; this is how write-back cycles between two views of the
// same data are broken.
func (e Effect) Suppressed(fn func()) {
	prev := e.state.suppressed.Swap(true)
	defer e.state.suppressed.Store(prev)
	fn()
}

// Suppress sets the suppression flag and returns a func restoring it.
func (e Effect) Suppress() (restore func()) {
	prev := e.state.suppressed.Swap(true)
	return func() { e.state.suppressed.Store(prev) }
}

// Stop makes the effect inert: it will never run again and triggers treat
// it as dead. Stale subscriber entries are pruned lazily, not here.
func (e Effect) Stop() {
	e.state.stopped.Store(true)
}

// Stopped reports whether Stop was called.
func (e Effect) Stopped() bool {
	return e.state.stopped.Load()
}

// Weak returns a non-owning handle to the effect.
func (e Effect) Weak() WeakEffect {
	return WeakEffect{p: weak.Make(e.state)}
}

// ID returns the effect's unique identity, shared by all handles.
func (e Effect) ID() uint64 {
	return e.state.id
}

// DefinedAt returns the file:line where the effect was created.
func (e Effect) DefinedAt() string {
	return e.state.definedAt
}

// Running returns the effect currently executing in w, if any.
func Running(w *World) (Effect, bool) {
	sub, ok := w.runningEffect()
	if !ok {
		return Effect{}, false
	}
	return sub.Upgrade()
}

// A WeakEffect references an effect without keeping it alive. Subscriber
// sets hold only weak handles; this is what keeps a signal that embeds a
// trigger from forming a cycle with an effect that captured the signal.
//
// WeakEffect is comparable and all weak handles to one effect are equal.
type WeakEffect struct {
	p weak.Pointer[effectState]
}

// Upgrade returns a strong handle, or false if the effect was stopped or
// collected.
func (we WeakEffect) Upgrade() (Effect, bool) {
	st := we.p.Value()
	if st == nil || st.stopped.Load() {
		return Effect{}, false
	}
	return Effect{state: st}, true
}

// TryRun runs the effect if it is still alive and reports whether it was.
func (we WeakEffect) TryRun() bool {
	e, ok := we.Upgrade()
	if !ok {
		return false
	}
	e.Run()
	return true
}
