package kindling

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// cellGuard is the borrow primitive of a signal's storage family: the
// unlocked family tracks borrows at runtime and panics on conflict, the
// shared family blocks until the conflicting borrow is released.
type cellGuard interface {
	acquireRead()
	releaseRead()
	acquireWrite()
	releaseWrite()
}

// panicBorrows tracks borrows in an atomic counter: -1 while one writer
// holds the value, otherwise the number of concurrent readers. The call
// shape of a reactive graph (reads and writes reached transitively
// through user closures) cannot be checked statically, so violations are
// caught here and are fatal.
type panicBorrows struct {
	borrows atomic.Int32
}

func (g *panicBorrows) acquireRead() {
	for {
		b := g.borrows.Load()
		if b < 0 {
			panic(fmt.Errorf("%w: cannot read the value while it is mutably borrowed", ErrBorrowConflict))
		}
		if g.borrows.CompareAndSwap(b, b+1) {
			return
		}
	}
}

func (g *panicBorrows) releaseRead() {
	g.borrows.Add(-1)
}

func (g *panicBorrows) acquireWrite() {
	if !g.borrows.CompareAndSwap(0, -1) {
		panic(fmt.Errorf("%w: cannot mutate the value while it is borrowed", ErrBorrowConflict))
	}
}

func (g *panicBorrows) releaseWrite() {
	g.borrows.Store(0)
}

// blockingBorrows serializes borrows on an RWMutex, so goroutines
// contending for one cell wait instead of crashing. A self-conflicting
// borrow on a single goroutine deadlocks here; blocking storage cannot
// tell re-entry apart from contention.
type blockingBorrows struct {
	mu sync.RWMutex
}

func (g *blockingBorrows) acquireRead()  { g.mu.RLock() }
func (g *blockingBorrows) releaseRead()  { g.mu.RUnlock() }
func (g *blockingBorrows) acquireWrite() { g.mu.Lock() }
func (g *blockingBorrows) releaseWrite() { g.mu.Unlock() }

type signalState[T any] struct {
	world   *World
	trigger Trigger
	value   T
	guard   cellGuard
}

// A Signal is a shared, observable value cell. Reading it inside an effect
// subscribes that effect; every write notifies all subscribers,
// unconditionally, even when the written value equals the old one. Layer a
// Memo on top for change detection.
//
// Copying a Signal copies a handle to the same storage.
type Signal[T any] struct {
	state *signalState[T]
}

// NewSignal allocates a cell holding value, with a fresh owned trigger.
// The cell's borrow primitive follows the world's storage family.
func NewSignal[T any](w *World, value T) Signal[T] {
	st := &signalState[T]{world: w, value: value, guard: w.newCellGuard()}
	st.trigger = newTrigger(w, callerLoc(1))
	return Signal[T]{state: st}
}

// World returns the scheduling domain the signal belongs to.
func (s Signal[T]) World() *World {
	return s.state.world
}

// Trigger returns the signal's owned trigger, for callers wiring custom
// notification on top of the cell.
func (s Signal[T]) Trigger() Trigger {
	return s.state.trigger
}

// Get subscribes the running effect, then returns a copy of the value.
func (s Signal[T]) Get() T {
	st := s.state
	st.trigger.gather(callerLoc(1))
	st.guard.acquireRead()
	defer st.guard.releaseRead()
	return st.value
}

// GetRaw returns a copy of the value without subscribing anything.
func (s Signal[T]) GetRaw() T {
	st := s.state
	st.guard.acquireRead()
	defer st.guard.releaseRead()
	return st.value
}

// With subscribes the running effect and lends the value to f under a read
// borrow. f must not mutate through the pointer.
func (s Signal[T]) With(f func(v *T)) {
	st := s.state
	st.trigger.gather(callerLoc(1))
	st.guard.acquireRead()
	defer st.guard.releaseRead()
	f(&st.value)
}

// WithRaw is With without subscribing anything.
func (s Signal[T]) WithRaw(f func(v *T)) {
	st := s.state
	st.guard.acquireRead()
	defer st.guard.releaseRead()
	f(&st.value)
}

// Borrow subscribes the running effect and acquires a read borrow,
// returning the value and a release func. Release is idempotent.
func (s Signal[T]) Borrow() (*T, func()) {
	s.state.trigger.gather(callerLoc(1))
	return s.borrow()
}

// BorrowRaw is Borrow without subscribing anything.
func (s Signal[T]) BorrowRaw() (*T, func()) {
	return s.borrow()
}

func (s Signal[T]) borrow() (*T, func()) {
	st := s.state
	st.guard.acquireRead()
	var once sync.Once
	return &st.value, func() { once.Do(st.guard.releaseRead) }
}

// BorrowMut acquires the mutable borrow and opens a batching scope that
// lasts until release. Releasing executes the signal's trigger and closes
// the scope, so overlapping BorrowMut guards on several cells form one
// batch and their common subscribers run exactly once.
func (s Signal[T]) BorrowMut() (*T, func()) {
	st := s.state
	w := st.world

	st.guard.acquireWrite()
	w.mu.Lock()
	w.queue.incRef()
	w.mu.Unlock()

	var once sync.Once
	release := func() {
		once.Do(func() {
			st.guard.releaseWrite()
			st.trigger.Exec().Release()
			w.releaseBatch()
		})
	}
	return &st.value, release
}

// Update runs f under the mutable borrow, then notifies subscribers.
func (s Signal[T]) Update(f func(v *T)) {
	v, release := s.BorrowMut()
	defer release()
	f(v)
}

// UpdateRaw is Update with dependency gathering paused inside f, for
// writes that must not create reactive links. Subscribers are still
// notified.
func (s Signal[T]) UpdateRaw(f func(v *T)) {
	s.state.world.Untracked(func() { s.Update(f) })
}

// Set replaces the value and notifies subscribers.
func (s Signal[T]) Set(value T) {
	s.Update(func(v *T) { *v = value })
}

// SetRaw is Set with dependency gathering paused.
func (s Signal[T]) SetRaw(value T) {
	s.state.world.Untracked(func() { s.Set(value) })
}

// Replace sets the value and returns the previous one.
func (s Signal[T]) Replace(value T) T {
	var old T
	s.Update(func(v *T) {
		old = *v
		*v = value
	})
	return old
}
