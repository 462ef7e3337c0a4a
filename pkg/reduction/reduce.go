package reduction

import (
	"fmt"

	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/network"
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/satformula"
)

// Reduce builds the propositional formula whose models correspond exactly
// to length-step paths through tn from its source to its sink that respect
// the stack discipline: Φ₁ ∧ Φ₂ ∧ Φ₃ ∧ Φ₄ ∧ Φ₆ ∧ Φ₈.
//
// Φ₅ and Φ₇ are not separate conjuncts: Φ₇ (successor existence) is built
// together with Φ₃ in phi3Transitions, and Φ₅ (top-of-stack consistency) is
// entailed by Φ₃ and deliberately left out — see phi5_topop.go.
//
// Reduce assumes length >= 1 and a well-formed network (at least one node,
// endpoints set via SetEndpoints); these are programmer-error preconditions,
// not recoverable runtime conditions, so Reduce panics rather than returning
// an error for them.
func Reduce(ctx *satformula.Context, tn *network.Tunnel, length int) satformula.Lit {
	if length < 1 {
		panic(fmt.Sprintf("reduction: Reduce requires length >= 1, got %d", length))
	}
	if tn.NumNodes() == 0 {
		panic("reduction: Reduce requires a network with at least one node")
	}

	return ctx.And(
		phi1Unicity(ctx, tn, length),
		phi2Endpoints(ctx, tn, length),
		phi3Transitions(ctx, tn, length),
		phi4WellFormedStack(ctx, tn, length),
		phi6StackEvolution(ctx, tn, length),
		phi8SimplePath(ctx, tn, length),
	)
}
