package reduction

import (
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/network"
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/satformula"
)

// phi8SimplePath builds Φ₈: no (node, height) state is visited at more
// than one position along the path.
func phi8SimplePath(ctx *satformula.Context, tn *network.Tunnel, length int) satformula.Lit {
	numNodes := tn.NumNodes()
	stackSize := StackSize(length)

	var clauses []satformula.Lit
	for node := 0; node < numNodes; node++ {
		for h := 0; h < stackSize; h++ {
			for i := 0; i <= length; i++ {
				for j := i + 1; j <= length; j++ {
					xi := pathVar(ctx, network.Node(node), i, h)
					xj := pathVar(ctx, network.Node(node), j, h)
					clauses = append(clauses, ctx.Not(ctx.And(xi, xj)))
				}
			}
		}
	}
	return ctx.And(clauses...)
}
