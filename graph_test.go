package kindling_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindling-go/kindling"
)

// the snapshot lists triggers, effects and gather counts
func TestGraphSnapshot(t *testing.T) {
	w := kindling.NewWorld()
	s := kindling.NewSignal(w, 1)

	e := kindling.NewEffect(w, func() {
		_ = s.Get()
		_ = s.Get()
	})

	g := w.Graph()
	require.Len(t, g.Edges, 1)
	assert.Equal(t, 2, g.Edges[0].Gathers, "both reads of one run are counted")
	assert.Equal(t, s.Trigger().ID(), g.Edges[0].From)
	assert.Equal(t, e.ID(), g.Edges[0].To)

	var kinds []kindling.NodeKind
	for _, n := range g.Nodes {
		kinds = append(kinds, n.Kind)
	}
	assert.Contains(t, kinds, kindling.NodeTrigger)
	assert.Contains(t, kinds, kindling.NodeEffect)

	runtime.KeepAlive(e)
}

// stopped effects show up as dead nodes until collected
func TestGraphMarksStoppedEffects(t *testing.T) {
	w := kindling.NewWorld()
	s := kindling.NewSignal(w, 1)

	e := kindling.NewEffect(w, func() { _ = s.Get() })
	e.Stop()

	g := w.Graph()
	found := false
	for _, n := range g.Nodes {
		if n.Kind == kindling.NodeEffect && n.ID == e.ID() {
			found = true
			assert.False(t, n.Alive)
		}
	}
	assert.True(t, found, "the stale edge keeps the node visible")
}

// DOT output is a valid digraph sketch
func TestGraphDOT(t *testing.T) {
	w := kindling.NewWorld()
	s := kindling.NewSignal(w, 1)
	e := kindling.NewEffect(w, func() { _ = s.Get() })

	dot := w.Graph().DOT()
	assert.Contains(t, dot, "digraph")
	assert.Contains(t, dot, "->")

	runtime.KeepAlive(e)
}
