package kindling

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a re-pushed subscriber keeps its earliest position, provenance merged
func TestRunQueueDedupKeepsEarliest(t *testing.T) {
	w := NewWorld()
	e1 := NewEffect(w, func() {})
	e2 := NewEffect(w, func() {})

	q := newRunQueue()
	q.push(e1.Weak(), subscriberInfo{gathers: 1, firstGather: "a", lastGather: "a"})
	q.push(e2.Weak(), subscriberInfo{gathers: 1, firstGather: "b", lastGather: "b"})
	q.push(e1.Weak(), subscriberInfo{gathers: 1, firstGather: "c", lastGather: "c"})

	item, ok := q.pop()
	require.True(t, ok)
	assert.Equal(t, e1.Weak(), item.sub, "first queued pops first")
	assert.Equal(t, 2, item.info.gathers)
	assert.Equal(t, "a", item.info.firstGather)
	assert.Equal(t, "c", item.info.lastGather)

	item, ok = q.pop()
	require.True(t, ok)
	assert.Equal(t, e2.Weak(), item.sub)

	_, ok = q.pop()
	assert.False(t, ok)
}

// an effect that already ran this drain is not re-queued
func TestRunQueueSkipsRanEffects(t *testing.T) {
	w := NewWorld()
	e := NewEffect(w, func() {})

	q := newRunQueue()
	q.push(e.Weak(), subscriberInfo{})
	_, ok := q.pop()
	require.True(t, ok)

	q.push(e.Weak(), subscriberInfo{})
	assert.True(t, q.empty())

	q.ran.Clear()
	q.push(e.Weak(), subscriberInfo{})
	assert.False(t, q.empty(), "a fresh drain accepts the effect again")
}

// the drain permit goes to whoever retires the last reference
func TestRunQueueDrainPermit(t *testing.T) {
	w := NewWorld()
	e := NewEffect(w, func() {})

	q := newRunQueue()
	q.incRef()
	q.incRef()
	q.push(e.Weak(), subscriberInfo{})

	assert.False(t, q.decRef(), "inner scope must not drain")
	assert.True(t, q.decRef(), "outermost scope takes the permit")

	q.incRef()
	assert.False(t, q.decRef(), "no second permit while one is outstanding")
}

// an empty queue yields no permit
func TestRunQueueNoPermitWhenEmpty(t *testing.T) {
	q := newRunQueue()
	q.incRef()
	assert.False(t, q.decRef())
}

func TestRunQueueRefCountUnderflow(t *testing.T) {
	q := newRunQueue()
	assert.PanicsWithValue(t, ErrRefCountUnderflow, func() {
		q.decRef()
	})
}

func TestEffectStackImbalance(t *testing.T) {
	var s effectStack
	assert.PanicsWithValue(t, ErrStackImbalance, func() {
		s.pop()
	})
}

// a paused frame hides the stack below it
func TestEffectStackPause(t *testing.T) {
	w := NewWorld()
	e := NewEffect(w, func() {})

	var s effectStack
	_, ok := s.top()
	assert.False(t, ok)

	s.push(stackFrame{sub: e.Weak()})
	sub, ok := s.top()
	require.True(t, ok)
	assert.Equal(t, e.Weak(), sub)

	s.push(stackFrame{paused: true})
	_, ok = s.top()
	assert.False(t, ok)

	s.pop()
	_, ok = s.top()
	assert.True(t, ok)
}

// the drain retires its permit in the locked step that observes emptiness
func TestDrainRetiresPermitAtomically(t *testing.T) {
	w := NewWorld()

	runs := 0
	e := NewEffect(w, func() { runs++ })

	for round := 2; round <= 4; round++ {
		w.mu.Lock()
		w.queue.incRef()
		w.queue.push(e.Weak(), subscriberInfo{})
		permit := w.queue.decRef()
		w.mu.Unlock()
		require.True(t, permit, "a fresh permit every round")

		w.drain()
		assert.Equal(t, round, runs)
		assert.False(t, w.queue.draining)
		assert.False(t, w.queue.running)
		assert.True(t, w.queue.empty())
	}
}

// entries pushed while a drain exits are never stranded without a permit
func TestDrainPicksUpRacingPushes(t *testing.T) {
	w := NewWorld(WithLocking())
	tr := NewTrigger(w)

	var runs atomic.Int64
	e := NewEffect(w, func() {
		tr.GatherSubscribers()
		runs.Add(1)
	})

	var wg sync.WaitGroup
	for g := 0; g < 2; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				tr.Trigger()
			}
		}()
	}
	wg.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()
	assert.True(t, w.queue.empty(), "nothing stays queued once all guards released")
	assert.False(t, w.queue.draining)
	assert.Zero(t, w.queue.refs)
	assert.Greater(t, runs.Load(), int64(1))

	runtime.KeepAlive(e)
}

func TestDrainReentrancyGuard(t *testing.T) {
	w := NewWorld()
	w.queue.running = true
	assert.PanicsWithValue(t, ErrQueueReentrancy, func() {
		w.drain()
	})
}

// removeSubscriber tears down a single dependency edge
func TestTriggerRemoveSubscriber(t *testing.T) {
	w := NewWorld()
	tr := NewTrigger(w)

	runs := 0
	e := NewEffect(w, func() {
		tr.GatherSubscribers()
		runs++
	})

	tr.removeSubscriber(e.Weak())
	tr.Trigger()
	assert.Equal(t, 1, runs)
}
