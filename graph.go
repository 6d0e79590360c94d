package kindling

import (
	"fmt"
	"sort"
	"strings"
)

// NodeKind distinguishes subscription-graph nodes.
type NodeKind int

const (
	NodeTrigger NodeKind = iota
	NodeEffect
)

func (k NodeKind) String() string {
	switch k {
	case NodeTrigger:
		return "trigger"
	case NodeEffect:
		return "effect"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// A GraphNode is a trigger or effect as seen at snapshot time. Dead
// effects that still have stale subscriber entries show up with Alive
// false.
type GraphNode struct {
	ID        uint64
	Kind      NodeKind
	DefinedAt string
	Alive     bool
}

// A GraphEdge records that a trigger notifies an effect, with the gather
// provenance accumulated on the subscription.
type GraphEdge struct {
	From        uint64 // trigger
	To          uint64 // effect
	Gathers     int
	FirstGather string
	LastGather  string
}

// A Graph is a read-only snapshot of a world's subscription graph. It is
// diagnostic only; nothing in the engine depends on it.
type Graph struct {
	Nodes []GraphNode
	Edges []GraphEdge
}

// Graph snapshots the current subscription graph. Triggers that have been
// collected are dropped from the registry here, as a lazy cleanup.
func (w *World) Graph() Graph {
	w.mu.Lock()
	defer w.mu.Unlock()

	var g Graph
	effects := make(map[uint64]struct{})
	for id, wt := range w.registry {
		t, ok := wt.Upgrade()
		if !ok {
			delete(w.registry, id)
			continue
		}
		g.Nodes = append(g.Nodes, GraphNode{
			ID:        t.state.id,
			Kind:      NodeTrigger,
			DefinedAt: t.state.definedAt,
			Alive:     true,
		})
		for sub, info := range t.state.subs {
			st := sub.p.Value()
			if st == nil {
				// Collected; even the identity is gone.
				continue
			}
			node := GraphNode{
				ID:        st.id,
				Kind:      NodeEffect,
				DefinedAt: st.definedAt,
				Alive:     !st.stopped.Load(),
			}
			if _, ok := effects[node.ID]; !ok {
				effects[node.ID] = struct{}{}
				g.Nodes = append(g.Nodes, node)
			}
			g.Edges = append(g.Edges, GraphEdge{
				From:        t.state.id,
				To:          node.ID,
				Gathers:     info.gathers,
				FirstGather: info.firstGather,
				LastGather:  info.lastGather,
			})
		}
	}

	sort.Slice(g.Nodes, func(i, j int) bool { return g.Nodes[i].ID < g.Nodes[j].ID })
	sort.Slice(g.Edges, func(i, j int) bool {
		if g.Edges[i].From != g.Edges[j].From {
			return g.Edges[i].From < g.Edges[j].From
		}
		return g.Edges[i].To < g.Edges[j].To
	})
	return g
}

// DOT renders the snapshot in Graphviz dot format.
func (g Graph) DOT() string {
	var sb strings.Builder
	sb.WriteString("digraph subscriptions {\n")
	for _, n := range g.Nodes {
		shape := "ellipse"
		if n.Kind == NodeEffect {
			shape = "box"
		}
		style := ""
		if !n.Alive {
			style = `, style="dashed"`
		}
		fmt.Fprintf(&sb, "\tn%d [label=%q, shape=%q%s];\n",
			n.ID, fmt.Sprintf("%s(%s)", n.Kind, n.DefinedAt), shape, style)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&sb, "\tn%d -> n%d [label=%q];\n",
			e.From, e.To, fmt.Sprintf("gathered %dx at %s", e.Gathers, e.LastGather))
	}
	sb.WriteString("}\n")
	return sb.String()
}
