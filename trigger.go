package kindling

import "weak"

// subscriberInfo is provenance recorded per subscription. It is used only
// for diagnostics (graph dumps); execution order comes from the run
// queue's sequence numbers, never from here.
type subscriberInfo struct {
	gathers     int
	firstGather string
	lastGather  string
}

func (si *subscriberInfo) merge(other subscriberInfo) {
	if si.gathers == 0 {
		si.firstGather = other.firstGather
	}
	si.gathers += other.gathers
	if other.lastGather != "" {
		si.lastGather = other.lastGather
	}
}

type triggerState struct {
	world     *World
	id        uint64
	definedAt string

	// Weak subscriber handles keyed by effect identity. Entries whose
	// effect has died stay in place and are skipped on Exec; they are not
	// proactively compacted.
	subs map[WeakEffect]subscriberInfo
}

// A Trigger is a subscription point. Signals embed one, but standalone
// triggers are useful for reactive sources that are not value cells, such
// as "this external event happened".
//
// Trigger is a shared handle like Effect.
type Trigger struct {
	state *triggerState
}

// NewTrigger creates a standalone trigger in w.
func NewTrigger(w *World) Trigger {
	return newTrigger(w, callerLoc(1))
}

func newTrigger(w *World, definedAt string) Trigger {
	st := &triggerState{
		world:     w,
		definedAt: definedAt,
		subs:      make(map[WeakEffect]subscriberInfo),
	}
	st.id = newID("trigger", definedAt)
	t := Trigger{state: st}
	w.register(t)
	return t
}

// GatherSubscribers records the currently-executing effect, if any, as a
// subscriber of this trigger. Re-gathering an already-subscribed effect
// only updates its provenance. Outside of an effect run this is a no-op.
func (t Trigger) GatherSubscribers() {
	t.gather(callerLoc(1))
}

func (t Trigger) gather(loc string) {
	st := t.state
	sub, ok := st.world.runningEffect()
	if !ok {
		return
	}
	st.world.mu.Lock()
	info := st.subs[sub]
	info.merge(subscriberInfo{gathers: 1, firstGather: loc, lastGather: loc})
	st.subs[sub] = info
	st.world.mu.Unlock()
}

// Exec enqueues every live, non-suppressed subscriber onto the world's run
// queue and returns a scope guard. The queue drains when the last
// overlapping guard is released, so several triggers can be executed as
// one logical operation with each queued effect running exactly once.
func (t Trigger) Exec() *ExecGuard {
	st := t.state
	w := st.world
	w.mu.Lock()
	w.queue.incRef()
	for sub, info := range st.subs {
		effect, alive := sub.Upgrade()
		if !alive {
			continue
		}
		if effect.state.suppressed.Load() {
			continue
		}
		w.queue.push(sub, info)
	}
	w.mu.Unlock()
	return &ExecGuard{world: w}
}

// Trigger executes the trigger and immediately releases the guard,
// draining the run queue unless an enclosing batching scope is open.
func (t Trigger) Trigger() {
	t.Exec().Release()
}

// removeSubscriber detaches one dependency edge. Dead entries are normally
// left for lazy skipping; this is for callers that tear an edge down
// explicitly.
func (t Trigger) removeSubscriber(sub WeakEffect) {
	t.state.world.mu.Lock()
	delete(t.state.subs, sub)
	t.state.world.mu.Unlock()
}

// Weak returns a non-owning handle to the trigger.
func (t Trigger) Weak() WeakTrigger {
	return WeakTrigger{p: weak.Make(t.state)}
}

// ID returns the trigger's unique identity, shared by all handles.
func (t Trigger) ID() uint64 {
	return t.state.id
}

// DefinedAt returns the file:line where the trigger was created.
func (t Trigger) DefinedAt() string {
	return t.state.definedAt
}

// A WeakTrigger references a trigger without keeping it alive.
type WeakTrigger struct {
	p weak.Pointer[triggerState]
}

// Upgrade returns a strong handle, or false if the trigger was collected.
func (wt WeakTrigger) Upgrade() (Trigger, bool) {
	st := wt.p.Value()
	if st == nil {
		return Trigger{}, false
	}
	return Trigger{state: st}, true
}

// An ExecGuard is the scope guard returned by Exec. The run queue drains
// when the outermost guard is released. Release is idempotent.
type ExecGuard struct {
	world    *World
	released bool
}

// Release ends the batching scope opened by Exec.
func (g *ExecGuard) Release() {
	if g == nil || g.released {
		return
	}
	g.released = true
	g.world.releaseBatch()
}
