package main

import (
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/network"
)

// demoScenario is one of the runnable (network, length) instances tunnelctl
// knows how to build, wiring every end-to-end scenario the reduction's test
// suite also exercises.
type demoScenario struct {
	Name        string
	Description string
	Length      int
	Build       func() *network.Tunnel
}

var demos = []demoScenario{
	{
		Name:        "direct-transmit",
		Description: "A --transmit_4--> B, length 1: trivial reachability.",
		Length:      1,
		Build:       buildDirectTransmit,
	},
	{
		Name:        "unreachable-sink",
		Description: "A, B with no edge, length 1: structurally unsatisfiable.",
		Length:      1,
		Build:       buildUnreachableSink,
	},
	{
		Name:        "push-pop",
		Description: "A --push_4_4--> M --pop_4_4--> B, length 2: one round trip.",
		Length:      2,
		Build:       buildPushPop,
	},
	{
		Name:        "symbol-switch",
		Description: "A --push_4_6--> M --pop_6_4--> B, length 2: a push/pop pair that changes symbol.",
		Length:      2,
		Build:       buildSymbolSwitch,
	},
	{
		Name:        "simple-path",
		Description: "A <-transmit_4-> B, length 2: the only length-2 walk from A, A->B->A, ends at A, not B.",
		Length:      2,
		Build:       buildSimplePath,
	},
	{
		Name:        "push-bounded",
		Description: "A --push_4_4--> M --push_4_4--> B, length 2: the horizon forbids two consecutive pushes.",
		Length:      2,
		Build:       buildPushBounded,
	},
}

func findDemo(name string) (demoScenario, bool) {
	for _, d := range demos {
		if d.Name == name {
			return d, true
		}
	}
	return demoScenario{}, false
}

func buildDirectTransmit() *network.Tunnel {
	tn := network.New()
	a, _ := tn.AddNode("A")
	b, _ := tn.AddNode("B")
	must(tn.AddEdge(a, b))
	must(tn.Enable(a, network.Transmit4))
	must(tn.SetEndpoints(a, b))
	return tn
}

func buildUnreachableSink() *network.Tunnel {
	tn := network.New()
	a, _ := tn.AddNode("A")
	b, _ := tn.AddNode("B")
	must(tn.Enable(a, network.Transmit4))
	must(tn.SetEndpoints(a, b))
	return tn
}

func buildPushPop() *network.Tunnel {
	tn := network.New()
	a, _ := tn.AddNode("A")
	m, _ := tn.AddNode("M")
	b, _ := tn.AddNode("B")
	must(tn.AddEdge(a, m))
	must(tn.AddEdge(m, b))
	must(tn.Enable(a, network.Push4_4))
	must(tn.Enable(m, network.Pop4_4))
	must(tn.SetEndpoints(a, b))
	return tn
}

func buildSymbolSwitch() *network.Tunnel {
	tn := network.New()
	a, _ := tn.AddNode("A")
	m, _ := tn.AddNode("M")
	b, _ := tn.AddNode("B")
	must(tn.AddEdge(a, m))
	must(tn.AddEdge(m, b))
	must(tn.Enable(a, network.Push4_6))
	must(tn.Enable(m, network.Pop6_4))
	must(tn.SetEndpoints(a, b))
	return tn
}

func buildSimplePath() *network.Tunnel {
	tn := network.New()
	a, _ := tn.AddNode("A")
	b, _ := tn.AddNode("B")
	must(tn.AddEdge(a, b))
	must(tn.AddEdge(b, a))
	must(tn.Enable(a, network.Transmit4))
	must(tn.Enable(b, network.Transmit4))
	must(tn.SetEndpoints(a, b))
	return tn
}

func buildPushBounded() *network.Tunnel {
	tn := network.New()
	a, _ := tn.AddNode("A")
	m, _ := tn.AddNode("M")
	b, _ := tn.AddNode("B")
	must(tn.AddEdge(a, m))
	must(tn.AddEdge(m, b))
	must(tn.Enable(a, network.Push4_4))
	must(tn.Enable(m, network.Push4_4))
	must(tn.SetEndpoints(a, b))
	return tn
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
