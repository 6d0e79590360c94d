//go:build !js && !wasip1

package kindling

import (
	"sync"

	"github.com/petermattis/goid"
)

var localWorlds sync.Map // goroutine id -> *World

// goroutineID keys per-goroutine state: implicit worlds and execution
// stacks.
func goroutineID() int64 {
	return goid.Get()
}

// Local returns the calling goroutine's implicit World, creating it on
// first use. Goroutine-local worlds use the unlocked storage family.
func Local() *World {
	gid := goroutineID()
	if w, ok := localWorlds.Load(gid); ok {
		return w.(*World)
	}
	w, _ := localWorlds.LoadOrStore(gid, NewWorld())
	return w.(*World)
}

// DisposeLocal drops the calling goroutine's implicit World. Call it
// before a long-lived goroutine exits; there is no exit hook that could do
// this automatically.
func DisposeLocal() {
	localWorlds.Delete(goroutineID())
}
