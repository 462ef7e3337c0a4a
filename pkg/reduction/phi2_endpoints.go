package reduction

import (
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/network"
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/satformula"
)

// phi2Endpoints builds Φ₂: the path starts at the network's source with an
// empty stack (height 0, bottom cell holding 4) and ends at the sink under
// the same condition.
//
// Reaching this with a network missing a source or sink is a well-formed-
// network precondition violation (see Reduce's doc comment), so it panics
// rather than returning an error.
func phi2Endpoints(ctx *satformula.Context, tn *network.Tunnel, length int) satformula.Lit {
	source, ok := tn.Initial()
	if !ok {
		panic("reduction: network has no source node; call SetEndpoints first")
	}
	sink, ok := tn.Final()
	if !ok {
		panic("reduction: network has no sink node; call SetEndpoints first")
	}

	return ctx.And(
		pathVar(ctx, source, 0, 0),
		fourVar(ctx, 0, 0),
		pathVar(ctx, sink, length, 0),
		fourVar(ctx, length, 0),
	)
}
