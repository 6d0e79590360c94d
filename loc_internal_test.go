package kindling

import "testing"

// ids stay unique across call sites no matter how many nodes have been
// allocated
func TestNewIDUnique(t *testing.T) {
	sites := []string{"cells.go:10", "cells.go:11", "relay.go:42"}
	seen := make(map[uint64]string, 300_000)
	for i := 0; i < 100_000; i++ {
		for _, site := range sites {
			id := newID("trigger", site)
			if prev, dup := seen[id]; dup {
				t.Fatalf("id %x allocated for both %s and %s", id, prev, site)
			}
			seen[id] = site
		}
	}
}
