package reduction

import (
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/network"
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/satformula"
)

// phi5TopOperation builds Φ₅: for every edge-backed transition, whichever
// action justifies it, the top-of-stack symbol(s) involved must be
// consistent with that action. Unlike Φ₃, this does not forbid a
// transition when the node has no matching action — it only constrains the
// stack contents when an enabled action is taken, one implication per
// enabled action rather than one implication per transition.
//
// Φ₅ is not part of Reduce's output formula: Φ₃ already implies every
// top-of-stack symbol consistency Φ₅ would add (Φ₃'s push/pop implications
// disjoin over exactly the same per-action stack-symbol conditions). It is
// kept, unexported, so TestPhi5EntailedByPhi3 can check that entailment holds
// rather than assert it from a comment.
func phi5TopOperation(ctx *satformula.Context, tn *network.Tunnel, length int) satformula.Lit {
	numNodes := tn.NumNodes()
	stackSize := StackSize(length)

	var clauses []satformula.Lit
	for i := 0; i < length; i++ {
		for node := 0; node < numNodes; node++ {
			for nextNode := 0; nextNode < numNodes; nextNode++ {
				if !tn.IsEdge(network.Node(node), network.Node(nextNode)) {
					continue
				}
				for haut := 0; haut < stackSize; haut++ {
					x := pathVar(ctx, network.Node(node), i, haut)

					if tn.HasAction(network.Node(node), network.Transmit4) {
						xNext := pathVar(ctx, network.Node(nextNode), i+1, haut)
						clauses = append(clauses, ctx.Implies(ctx.And(x, xNext), fourVar(ctx, i, haut)))
					}
					if tn.HasAction(network.Node(node), network.Transmit6) {
						xNext := pathVar(ctx, network.Node(nextNode), i+1, haut)
						clauses = append(clauses, ctx.Implies(ctx.And(x, xNext), sixVar(ctx, i, haut)))
					}

					if haut+1 < stackSize {
						xNextPush := pathVar(ctx, network.Node(nextNode), i+1, haut+1)
						transitionPush := ctx.And(x, xNextPush)
						for _, a := range pushActions {
							if tn.HasAction(network.Node(node), a) {
								cond := ctx.And(symbolVar(ctx, a.Reads(), i, haut), symbolVar(ctx, a.Writes(), i+1, haut+1))
								clauses = append(clauses, ctx.Implies(transitionPush, cond))
							}
						}
					}

					if haut > 0 {
						xNextPop := pathVar(ctx, network.Node(nextNode), i+1, haut-1)
						transitionPop := ctx.And(x, xNextPop)
						for _, a := range popActions {
							if tn.HasAction(network.Node(node), a) {
								cond := ctx.And(symbolVar(ctx, a.Reads(), i, haut), symbolVar(ctx, a.Writes(), i, haut-1))
								clauses = append(clauses, ctx.Implies(transitionPop, cond))
							}
						}
					}
				}
			}
		}
	}
	return ctx.And(clauses...)
}
