package network

import "testing"

func TestAddNodeIdempotent(t *testing.T) {
	tn := New()
	a, err := tn.AddNode("a")
	if err != nil {
		t.Fatalf("add node: %v", err)
	}
	a2, err := tn.AddNode("a")
	if err != nil {
		t.Fatalf("re-add node: %v", err)
	}
	if a != a2 {
		t.Fatalf("expected re-adding %q to return the same node, got %d and %d", "a", a, a2)
	}
	if tn.NumNodes() != 1 {
		t.Fatalf("expected 1 node, got %d", tn.NumNodes())
	}
}

func TestAddEdgeAndIsEdge(t *testing.T) {
	tn := New()
	a, _ := tn.AddNode("a")
	b, _ := tn.AddNode("b")
	c, _ := tn.AddNode("c")

	if err := tn.AddEdge(a, b); err != nil {
		t.Fatalf("add edge: %v", err)
	}

	if !tn.IsEdge(a, b) {
		t.Fatalf("expected a->b to be an edge")
	}
	if tn.IsEdge(b, a) {
		t.Fatalf("expected b->a to not be an edge (directed network)")
	}
	if tn.IsEdge(a, c) {
		t.Fatalf("expected a->c to not be an edge")
	}
}

func TestAddEdgeRejectsUnknownNode(t *testing.T) {
	tn := New()
	a, _ := tn.AddNode("a")
	if err := tn.AddEdge(a, Node(99)); err == nil {
		t.Fatalf("expected error adding edge to an unknown node")
	}
}

func TestEnableAndHasAction(t *testing.T) {
	tn := New()
	a, _ := tn.AddNode("a")

	if tn.HasAction(a, Transmit4) {
		t.Fatalf("expected node to start with no actions enabled")
	}
	if err := tn.Enable(a, Transmit4, Push4_6); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if !tn.HasAction(a, Transmit4) || !tn.HasAction(a, Push4_6) {
		t.Fatalf("expected enabled actions to report true")
	}
	if tn.HasAction(a, Pop6_4) {
		t.Fatalf("expected un-enabled action to report false")
	}
}

func TestSetEndpoints(t *testing.T) {
	tn := New()
	a, _ := tn.AddNode("a")
	b, _ := tn.AddNode("b")

	if _, ok := tn.Initial(); ok {
		t.Fatalf("expected no initial node before SetEndpoints")
	}

	if err := tn.SetEndpoints(a, b); err != nil {
		t.Fatalf("set endpoints: %v", err)
	}
	source, ok := tn.Initial()
	if !ok || source != a {
		t.Fatalf("expected initial node %d, got %d (ok=%v)", a, source, ok)
	}
	sink, ok := tn.Final()
	if !ok || sink != b {
		t.Fatalf("expected final node %d, got %d (ok=%v)", b, sink, ok)
	}
}

func TestActionDeltaAndClassification(t *testing.T) {
	cases := []struct {
		action       Action
		delta        int
		isPush       bool
		isPop        bool
		isTransmit   bool
		readsSymbol  Symbol
		writesSymbol Symbol
	}{
		{Transmit4, 0, false, false, true, Four, 0},
		{Transmit6, 0, false, false, true, Six, 0},
		{Push4_4, +1, true, false, false, Four, Four},
		{Push4_6, +1, true, false, false, Four, Six},
		{Push6_4, +1, true, false, false, Six, Four},
		{Push6_6, +1, true, false, false, Six, Six},
		{Pop4_4, -1, false, true, false, Four, Four},
		{Pop4_6, -1, false, true, false, Four, Six},
		{Pop6_4, -1, false, true, false, Six, Four},
		{Pop6_6, -1, false, true, false, Six, Six},
	}
	for _, c := range cases {
		if got := c.action.Delta(); got != c.delta {
			t.Errorf("%s: delta = %d, want %d", c.action, got, c.delta)
		}
		if got := c.action.IsPush(); got != c.isPush {
			t.Errorf("%s: IsPush = %v, want %v", c.action, got, c.isPush)
		}
		if got := c.action.IsPop(); got != c.isPop {
			t.Errorf("%s: IsPop = %v, want %v", c.action, got, c.isPop)
		}
		if got := c.action.IsTransmit(); got != c.isTransmit {
			t.Errorf("%s: IsTransmit = %v, want %v", c.action, got, c.isTransmit)
		}
		if got := c.action.Reads(); got != c.readsSymbol {
			t.Errorf("%s: Reads = %v, want %v", c.action, got, c.readsSymbol)
		}
		if (c.action.IsPush() || c.action.IsPop()) && c.action.Writes() != c.writesSymbol {
			t.Errorf("%s: Writes = %v, want %v", c.action, c.action.Writes(), c.writesSymbol)
		}
	}
}

func TestAllActionsCoversTenTags(t *testing.T) {
	all := AllActions()
	if len(all) != 10 {
		t.Fatalf("expected 10 action tags, got %d", len(all))
	}
	seen := make(map[Action]bool)
	for _, a := range all {
		if seen[a] {
			t.Fatalf("duplicate action tag %s in AllActions", a)
		}
		seen[a] = true
	}
}

func TestNeighbors(t *testing.T) {
	tn := New()
	a, _ := tn.AddNode("a")
	b, _ := tn.AddNode("b")
	c, _ := tn.AddNode("c")
	_ = tn.AddEdge(a, b)
	_ = tn.AddEdge(a, c)

	neighbors, err := tn.Neighbors(a)
	if err != nil {
		t.Fatalf("neighbors: %v", err)
	}
	if len(neighbors) != 2 {
		t.Fatalf("expected 2 neighbors of a, got %d", len(neighbors))
	}
}
