// Package network represents a tunnel network: a directed graph whose nodes
// may be enabled for zero or more stack actions (transmit, push, pop on
// either of the two stack symbols). It wraps github.com/katalvlaran/lvlath's
// core.Graph, which this package uses purely as an adjacency store — node
// identity, action tables, and endpoint bookkeeping live here.
package network

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// Symbol is one of the two stack alphabet symbols the reduction works with.
type Symbol int

const (
	Four Symbol = 4
	Six  Symbol = 6
)

func (s Symbol) String() string {
	switch s {
	case Four:
		return "4"
	case Six:
		return "6"
	default:
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
}

// Action is one of the ten action tags a node may be enabled for.
type Action int

const (
	Transmit4 Action = iota
	Transmit6
	Push4_4
	Push4_6
	Push6_4
	Push6_6
	Pop4_4
	Pop4_6
	Pop6_4
	Pop6_6
)

// actionInfo describes the stack effect of an action: the signed height
// delta it applies and, for push/pop actions, the symbol read from or
// written to the cell the delta crosses. Transmit actions carry no stack
// effect of their own (Delta 0) — what they do carry is the variable family
// constraints read from Before: transmit_4 asserts the symbol AT the
// current top is 4, transmit_6 asserts it is 6.
type actionInfo struct {
	Name   string
	Delta  int
	Before Symbol // symbol required at the current top, where applicable
	After  Symbol // symbol written at the new top, where applicable
}

var actionTable = map[Action]actionInfo{
	Transmit4: {Name: "transmit_4", Delta: 0, Before: Four},
	Transmit6: {Name: "transmit_6", Delta: 0, Before: Six},
	Push4_4:   {Name: "push_4_4", Delta: +1, Before: Four, After: Four},
	Push4_6:   {Name: "push_4_6", Delta: +1, Before: Four, After: Six},
	Push6_4:   {Name: "push_6_4", Delta: +1, Before: Six, After: Four},
	Push6_6:   {Name: "push_6_6", Delta: +1, Before: Six, After: Six},
	Pop4_4:    {Name: "pop_4_4", Delta: -1, Before: Four, After: Four},
	Pop4_6:    {Name: "pop_4_6", Delta: -1, Before: Four, After: Six},
	Pop6_4:    {Name: "pop_6_4", Delta: -1, Before: Six, After: Four},
	Pop6_6:    {Name: "pop_6_6", Delta: -1, Before: Six, After: Six},
}

// String returns the action tag the way the reduction names it in error
// messages and in the pretty-printer.
func (a Action) String() string {
	if info, ok := actionTable[a]; ok {
		return info.Name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Delta reports the signed stack-height change an action applies.
func (a Action) Delta() int { return actionTable[a].Delta }

// IsPush reports whether a is one of the four push_*_* actions.
func (a Action) IsPush() bool { return actionTable[a].Delta > 0 }

// IsPop reports whether a is one of the four pop_*_* actions.
func (a Action) IsPop() bool { return actionTable[a].Delta < 0 }

// IsTransmit reports whether a is transmit_4 or transmit_6.
func (a Action) IsTransmit() bool { return actionTable[a].Delta == 0 }

// Reads returns the symbol an action requires to already be at the current
// top of stack (for transmit and pop actions, the symbol being consumed; for
// push actions, the symbol the action is conditioned on seeing at the old
// top, mirroring the original reduction's push_X_Y naming where X is read
// and Y is written).
func (a Action) Reads() Symbol { return actionTable[a].Before }

// Writes returns the symbol a push or pop action leaves at the new top.
func (a Action) Writes() Symbol { return actionTable[a].After }

// AllActions lists every action tag, in declaration order.
func AllActions() []Action {
	return []Action{Transmit4, Transmit6, Push4_4, Push4_6, Push6_4, Push6_6, Pop4_4, Pop4_6, Pop6_4, Pop6_6}
}

// Node identifies a vertex of the tunnel network by its position in the
// network's node table (0-based, dense). It is the unit the reduction's
// variable families (x, y4, y6) are indexed by.
type Node int

// Tunnel is a directed tunnel network: a graph of nodes, each optionally
// enabled for a subset of actions, plus a distinguished source and sink.
type Tunnel struct {
	g         *core.Graph
	names     []string
	index     map[string]Node
	actions   []map[Action]bool
	source    Node
	sink      Node
	hasSource bool
	hasSink   bool
}

// New creates an empty tunnel network. Tunnel networks are always directed:
// the original problem's transitions are one-way tunnels.
func New() *Tunnel {
	return &Tunnel{
		g:     core.NewGraph(core.WithDirected(true)),
		index: make(map[string]Node),
	}
}

// AddNode adds a new node named name and returns its Node handle. Adding the
// same name twice returns the existing handle rather than erroring, since
// network construction code (demo scenarios, CLI parsing) often revisits a
// node when wiring multiple edges.
func (t *Tunnel) AddNode(name string) (Node, error) {
	if n, ok := t.index[name]; ok {
		return n, nil
	}
	if err := t.g.AddVertex(name); err != nil {
		return 0, fmt.Errorf("network: add node %q: %w", name, err)
	}
	n := Node(len(t.names))
	t.names = append(t.names, name)
	t.actions = append(t.actions, make(map[Action]bool))
	t.index[name] = n
	return n, nil
}

// AddEdge adds a directed tunnel from u to v.
func (t *Tunnel) AddEdge(u, v Node) error {
	if err := t.checkNode(u); err != nil {
		return err
	}
	if err := t.checkNode(v); err != nil {
		return err
	}
	if _, err := t.g.AddEdge(t.names[u], t.names[v], 1.0); err != nil {
		return fmt.Errorf("network: add edge %s->%s: %w", t.names[u], t.names[v], err)
	}
	return nil
}

// Enable marks node n as capable of performing each of the given actions.
func (t *Tunnel) Enable(n Node, actions ...Action) error {
	if err := t.checkNode(n); err != nil {
		return err
	}
	for _, a := range actions {
		t.actions[n][a] = true
	}
	return nil
}

// SetEndpoints designates source as the path's start and sink as its end.
func (t *Tunnel) SetEndpoints(source, sink Node) error {
	if err := t.checkNode(source); err != nil {
		return err
	}
	if err := t.checkNode(sink); err != nil {
		return err
	}
	t.source, t.hasSource = source, true
	t.sink, t.hasSink = sink, true
	return nil
}

func (t *Tunnel) checkNode(n Node) error {
	if int(n) < 0 || int(n) >= len(t.names) {
		return fmt.Errorf("network: node %d out of range [0,%d)", n, len(t.names))
	}
	return nil
}

// NumNodes returns the number of nodes in the network.
func (t *Tunnel) NumNodes() int { return len(t.names) }

// NodeName returns the human-readable name of node n, for diagnostics.
func (t *Tunnel) NodeName(n Node) string {
	if int(n) < 0 || int(n) >= len(t.names) {
		return fmt.Sprintf("<invalid node %d>", n)
	}
	return t.names[n]
}

// Initial returns the designated source node. The second return value is
// false if SetEndpoints has not been called.
func (t *Tunnel) Initial() (Node, bool) { return t.source, t.hasSource }

// Final returns the designated sink node. The second return value is false
// if SetEndpoints has not been called.
func (t *Tunnel) Final() (Node, bool) { return t.sink, t.hasSink }

// IsEdge reports whether there is a direct tunnel from u to v.
func (t *Tunnel) IsEdge(u, v Node) bool {
	if int(u) < 0 || int(u) >= len(t.names) || int(v) < 0 || int(v) >= len(t.names) {
		return false
	}
	neighbors, err := t.g.NeighborIDs(t.names[u])
	if err != nil {
		return false
	}
	target := t.names[v]
	for _, id := range neighbors {
		if id == target {
			return true
		}
	}
	return false
}

// HasAction reports whether node n is enabled for action a.
func (t *Tunnel) HasAction(n Node, a Action) bool {
	if int(n) < 0 || int(n) >= len(t.names) {
		return false
	}
	return t.actions[n][a]
}

// Neighbors returns the nodes directly reachable from n via a single tunnel,
// in the order lvlath reports them.
func (t *Tunnel) Neighbors(n Node) ([]Node, error) {
	if err := t.checkNode(n); err != nil {
		return nil, err
	}
	ids, err := t.g.NeighborIDs(t.names[n])
	if err != nil {
		return nil, fmt.Errorf("network: neighbors of %s: %w", t.names[n], err)
	}
	out := make([]Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.index[id])
	}
	return out, nil
}
