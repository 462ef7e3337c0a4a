package reduction

import (
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/network"
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/satformula"
)

// phi6StackEvolution builds Φ₆: the stack cells the current action does
// not touch keep their contents across the transition. TRANSMIT preserves
// every cell up to and including the current top; PUSH preserves every
// cell up to and including the old top and additionally fixes the new
// top's symbol; POP preserves every cell strictly below the old top (the
// popped cell itself is, by definition, no longer part of the stack).
func phi6StackEvolution(ctx *satformula.Context, tn *network.Tunnel, length int) satformula.Lit {
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

					if tn.HasAction(network.Node(node), network.Transmit4) || tn.HasAction(network.Node(node), network.Transmit6) {
						xNext := pathVar(ctx, network.Node(nextNode), i+1, haut)
						transition := ctx.And(x, xNext)
						clauses = append(clauses, ctx.Implies(transition, preserveBelow(ctx, i, haut, true)))
					}

					if haut+1 < stackSize {
						for _, a := range pushActions {
							if !tn.HasAction(network.Node(node), a) {
								continue
							}
							xNext := pathVar(ctx, network.Node(nextNode), i+1, haut+1)
							transition := ctx.And(x, xNext)
							newTop := symbolVar(ctx, a.Writes(), i+1, haut+1)
							conds := append([]satformula.Lit{newTop}, preservedPairs(ctx, i, haut, true)...)
							clauses = append(clauses, ctx.Implies(transition, ctx.And(conds...)))
						}
					}

					if haut > 0 && hasAnyAction(tn, network.Node(node), popActions) {
						xNext := pathVar(ctx, network.Node(nextNode), i+1, haut-1)
						transition := ctx.And(x, xNext)
						clauses = append(clauses, ctx.Implies(transition, preserveBelow(ctx, i, haut, false)))
					}
				}
			}
		}
	}
	return ctx.And(clauses...)
}

// preservedPairs returns, for each cell k from 0 to haut (inclusive if
// upToAndIncluding, else 0 to haut-1), the pair of equalities asserting
// cell k's symbol at position i equals its symbol at position i+1.
func preservedPairs(ctx *satformula.Context, i, haut int, upToAndIncluding bool) []satformula.Lit {
	top := haut
	if !upToAndIncluding {
		top = haut - 1
	}
	pairs := make([]satformula.Lit, 0, 2*(top+1))
	for k := 0; k <= top; k++ {
		pairs = append(pairs,
			ctx.Eq(fourVar(ctx, i, k), fourVar(ctx, i+1, k)),
			ctx.Eq(sixVar(ctx, i, k), sixVar(ctx, i+1, k)),
		)
	}
	return pairs
}

func preserveBelow(ctx *satformula.Context, i, haut int, upToAndIncluding bool) satformula.Lit {
	return ctx.And(preservedPairs(ctx, i, haut, upToAndIncluding)...)
}
