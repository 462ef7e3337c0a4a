package reduction

import (
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/network"
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/satformula"
)

// phi4WellFormedStack builds Φ₄: whenever the stack is at height h, every
// cell k from 0 up to and including h holds exactly one of the two
// symbols.
//
// The upper bound on k is inclusive of h itself, matching the original
// reduction (creer_contrainte_pile_bien_definie iterates k from 0 to h
// inclusive, not h-1). Cell h is the stack's current top, not a cell above
// it, so constraining it is not a defect — it is kept exactly as the
// original specifies it.
func phi4WellFormedStack(ctx *satformula.Context, tn *network.Tunnel, length int) satformula.Lit {
	numNodes := tn.NumNodes()
	stackSize := StackSize(length)

	var clauses []satformula.Lit
	for i := 0; i <= length; i++ {
		for h := 0; h < stackSize; h++ {
			statesAtHeight := make([]satformula.Lit, 0, numNodes)
			for node := 0; node < numNodes; node++ {
				statesAtHeight = append(statesAtHeight, pathVar(ctx, network.Node(node), i, h))
			}
			atThisHeight := ctx.Or(statesAtHeight...)

			cellsOK := make([]satformula.Lit, 0, h+1)
			for k := 0; k <= h; k++ {
				has4 := fourVar(ctx, i, k)
				has6 := sixVar(ctx, i, k)
				only4 := ctx.And(has4, ctx.Not(has6))
				only6 := ctx.And(ctx.Not(has4), has6)
				cellsOK = append(cellsOK, ctx.Or(only4, only6))
			}
			clauses = append(clauses, ctx.Implies(atThisHeight, ctx.And(cellsOK...)))
		}
	}
	return ctx.And(clauses...)
}
