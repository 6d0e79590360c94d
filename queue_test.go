package kindling_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kindling-go/kindling"
)

// a batch over several writes runs each subscriber exactly once
func TestBatchRunsOnce(t *testing.T) {
	w := kindling.NewWorld()
	a := kindling.NewSignal(w, 1)
	b := kindling.NewSignal(w, 2)

	runs := 0
	sum := 0
	e := kindling.NewEffect(w, func() {
		sum = a.Get() + b.Get()
		runs++
	})
	assert.Equal(t, 1, runs)
	assert.Equal(t, 3, sum)

	w.Batch(func() {
		a.Set(10)
		b.Set(20)
	})
	assert.Equal(t, 2, runs)
	assert.Equal(t, 30, sum)

	runtime.KeepAlive(e)
}

// nested batches collapse into the outermost scope
func TestBatchNests(t *testing.T) {
	w := kindling.NewWorld()
	a := kindling.NewSignal(w, 1)
	b := kindling.NewSignal(w, 2)

	runs := 0
	e := kindling.NewEffect(w, func() {
		_ = a.Get() + b.Get()
		runs++
	})

	w.Batch(func() {
		a.Set(10)
		w.Batch(func() {
			b.Set(20)
		})
		assert.Equal(t, 1, runs, "inner batch end must not drain")
	})
	assert.Equal(t, 2, runs)

	runtime.KeepAlive(e)
}

// SetAllN is a batch, not N cascades
func TestSetAllN(t *testing.T) {
	w := kindling.NewWorld()
	a := kindling.NewSignal(w, 0)
	b := kindling.NewSignal(w, 0)
	c := kindling.NewSignal(w, 0)

	runs := 0
	total := 0
	e := kindling.NewEffect(w, func() {
		total = a.Get() + b.Get() + c.Get()
		runs++
	})

	kindling.SetAll3(a, 1, b, 2, c, 3)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 6, total)

	kindling.SetAll2(a, 10, b, 20)
	assert.Equal(t, 3, runs)
	assert.Equal(t, 33, total)

	runtime.KeepAlive(e)
}

// a cascading chain advances one link per round, never compounding
//
//	t1 -> relay12 -> t2 -> relay23 -> t3 -> counter <- beat
func TestCascadeIsBreadthFirst(t *testing.T) {
	w := kindling.NewWorld()
	t1 := kindling.NewTrigger(w)
	t2 := kindling.NewTrigger(w)
	t3 := kindling.NewTrigger(w)
	beat := kindling.NewTrigger(w)

	relay12 := kindling.NewEffect(w, func() {
		t1.GatherSubscribers()
		t2.Trigger()
	})
	relay23 := kindling.NewEffect(w, func() {
		t2.GatherSubscribers()
		t3.Trigger()
	})

	count := 0
	counter := kindling.NewEffect(w, func() {
		t3.GatherSubscribers()
		beat.GatherSubscribers()
		count++
	})
	assert.Equal(t, 1, count)

	// Firing the chain head and the direct input together: the counter runs
	// once for this round, the relayed wake lands in the same pass.
	w.Batch(func() {
		t1.Trigger()
		beat.Trigger()
	})
	assert.Equal(t, 2, count)

	// Same round with the firing order reversed.
	w.Batch(func() {
		beat.Trigger()
		t1.Trigger()
	})
	assert.Equal(t, 3, count)

	runtime.KeepAlive(relay12)
	runtime.KeepAlive(relay23)
	runtime.KeepAlive(counter)
}

// subscribers run in first-queued order once the last guard drops
func TestOverlappingMutBorrowsRunInOrder(t *testing.T) {
	w := kindling.NewWorld()
	a := kindling.NewSignal(w, 5)
	b := kindling.NewSignal(w, 6)

	var order []string
	a2 := kindling.NewMemo(w, func() int {
		order = append(order, "a2")
		return a.Get() + 1
	})
	b2 := kindling.NewMemo(w, func() int {
		order = append(order, "b2")
		return b.Get() + 1
	})
	joined := 0
	c := kindling.NewEffect(w, func() {
		order = append(order, "c")
		joined = a2.Get() + b2.Get()
	})
	assert.Equal(t, 13, joined)

	pa, releaseA := a.BorrowMut()
	pb, releaseB := b.BorrowMut()
	*pa = 7
	*pb = 8
	order = order[:0]

	releaseA()
	assert.Empty(t, order, "b's guard still holds the scope open")
	releaseB()

	assert.Equal(t, []string{"a2", "b2", "c"}, order)
	assert.Equal(t, 17, joined)

	a2.Stop()
	b2.Stop()
	runtime.KeepAlive(c)
}

// a write from inside an effect extends the current drain
func TestWriteInsideEffectExtendsDrain(t *testing.T) {
	w := kindling.NewWorld()
	src := kindling.NewSignal(w, 1)
	mid := kindling.NewSignal(w, 0)

	forward := kindling.NewEffect(w, func() {
		v := src.Get()
		mid.Set(v * 10)
	})

	got := 0
	sink := kindling.NewEffect(w, func() {
		got = mid.Get()
	})
	assert.Equal(t, 10, got)

	src.Set(2)
	assert.Equal(t, 20, got)

	runtime.KeepAlive(forward)
	runtime.KeepAlive(sink)
}
