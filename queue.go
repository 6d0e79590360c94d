package kindling

import (
	mapset "github.com/deckarep/golang-set/v2"
)

type queueItem struct {
	sub  WeakEffect
	seq  uint64
	info subscriberInfo
}

// runQueue is the deduplicating, insertion-ordered batching scheduler.
// Sequence numbers only ever increase, so the backing slice is already in
// pop order and a head index is enough to pop the minimum.
//
// All methods require the owning World's lock to be held.
type runQueue struct {
	items []queueItem
	head  int
	index map[WeakEffect]int

	// Effects that already ran during the current drain. A re-push of such
	// an effect is dropped: each computation runs at most once per
	// outermost batch.
	ran mapset.Set[WeakEffect]

	seq      uint64
	refs     int
	draining bool // a drain permit has been issued and not yet retired
	running  bool // the drain loop itself is executing
}

func newRunQueue() runQueue {
	return runQueue{
		index: make(map[WeakEffect]int),
		ran:   mapset.NewThreadUnsafeSet[WeakEffect](),
	}
}

// push enqueues a subscriber. An already-queued subscriber keeps its
// earlier position and only has its provenance merged, so a computation
// reached through two paths runs once, where the first path put it.
func (q *runQueue) push(sub WeakEffect, info subscriberInfo) {
	if q.ran.Contains(sub) {
		return
	}
	if i, ok := q.index[sub]; ok {
		q.items[i].info.merge(info)
		return
	}
	q.items = append(q.items, queueItem{sub: sub, seq: q.seq, info: info})
	q.index[sub] = len(q.items) - 1
	q.seq++
}

// pop removes and returns the lowest-sequence entry, marking it as ran for
// the remainder of the current drain.
func (q *runQueue) pop() (queueItem, bool) {
	if q.head >= len(q.items) {
		q.items = q.items[:0]
		q.head = 0
		clear(q.index)
		return queueItem{}, false
	}
	item := q.items[q.head]
	q.items[q.head] = queueItem{}
	q.head++
	delete(q.index, item.sub)
	q.ran.Add(item.sub)
	return item, true
}

func (q *runQueue) empty() bool {
	return q.head >= len(q.items)
}

func (q *runQueue) incRef() {
	q.refs++
}

// retirePermit ends the current drain: flags cleared, per-drain ran set
// emptied. Must run in the same locked step that observed an empty queue,
// or a push racing with the drain's exit would see draining still set and
// be stranded with no permit ever issued for it.
func (q *runQueue) retirePermit() {
	q.running = false
	q.draining = false
	q.ran.Clear()
}

// decRef retires one batching reference. It reports whether the caller now
// holds the drain permit: the count reached zero, the queue is non-empty
// and no other drain is pending.
func (q *runQueue) decRef() bool {
	q.refs--
	if q.refs < 0 {
		panic(ErrRefCountUnderflow)
	}
	if q.refs == 0 && !q.empty() && !q.draining {
		q.draining = true
		return true
	}
	return false
}
