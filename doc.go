// Package kindling is a fine-grained reactive dependency-tracking and
// scheduling engine.
//
// The engine is built from three primitives: a Signal holds a value, a
// Trigger fans change notifications out to subscribers, and an Effect is a
// re-runnable closure. Dependencies are captured implicitly: any Signal or
// Trigger read while an Effect's action executes subscribes that Effect,
// and writing a Signal later re-runs every live subscriber through a
// deduplicating, insertion-ordered run queue.
//
// All scheduling happens inside a World, which is a single logical
// scheduling domain. Local returns the calling goroutine's implicit World;
// NewWorld creates an explicit one, optionally with locked storage so that
// the same World can be shared across goroutines.
package kindling
