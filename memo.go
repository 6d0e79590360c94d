package kindling

// A Memo is a derived value with change detection, layered on the core
// primitives: an internal effect recomputes whenever a dependency fires
// and writes the output cell only when the result actually changed, so
// subscribers of the memo are insulated from no-op recomputations.
type Memo[T comparable] struct {
	out    Signal[T]
	effect Effect
}

// NewMemo creates a memo and computes its initial value synchronously.
func NewMemo[T comparable](w *World, compute func() T) Memo[T] {
	out := NewSignal(w, *new(T))
	effect := NewEffect(w, func() {
		next := compute()
		if out.GetRaw() == next {
			return
		}
		out.Set(next)
	})
	return Memo[T]{out: out, effect: effect}
}

// Get subscribes the running effect to the memo's output and returns it.
func (m Memo[T]) Get() T {
	return m.out.Get()
}

// GetRaw returns the output without subscribing anything.
func (m Memo[T]) GetRaw() T {
	return m.out.GetRaw()
}

// Effect returns the memo's internal computation, e.g. for suppression.
func (m Memo[T]) Effect() Effect {
	return m.effect
}

// Stop makes the memo inert; its output keeps the last computed value.
func (m Memo[T]) Stop() {
	m.effect.Stop()
}
