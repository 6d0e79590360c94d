//go:build js || wasip1

package kindling

import "sync"

// Wasm runs a single scheduling domain; every goroutine shares one world.

// goroutineID keys per-goroutine state. The wasm runtime schedules one
// goroutine at a time, so a single key suffices.
func goroutineID() int64 {
	return 0
}

var (
	localWorld     *World
	localWorldOnce sync.Once
)

// Local returns the process-wide World.
func Local() *World {
	localWorldOnce.Do(func() { localWorld = NewWorld() })
	return localWorld
}

// DisposeLocal is a no-op on wasm.
func DisposeLocal() {}
