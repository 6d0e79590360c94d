package kindling

import "errors"

// These conditions are programmer errors, not data errors. The engine
// panics with a wrapped sentinel instead of returning them: the reactive
// graph would be inconsistent if execution continued past a violation.
var (
	// ErrBorrowConflict is raised when a signal value is read while
	// mutably borrowed, or mutated while any borrow is outstanding.
	// Only the unlocked storage family raises it; shared worlds block
	// on conflicting borrows instead.
	ErrBorrowConflict = errors.New("kindling: borrow conflict")

	// ErrStackImbalance is raised when the execution stack is popped
	// without a matching push. Unreachable through the public API.
	ErrStackImbalance = errors.New("kindling: execution stack imbalance")

	// ErrRefCountUnderflow is raised when the run queue's batching
	// reference count is decremented below zero, which indicates a
	// mismatched Exec/Release pairing.
	ErrRefCountUnderflow = errors.New("kindling: run queue reference count underflow")

	// ErrQueueReentrancy is raised on an attempt to start a second drain
	// while one is active. Unreachable through the public API.
	ErrQueueReentrancy = errors.New("kindling: run queue drained reentrantly")
)
