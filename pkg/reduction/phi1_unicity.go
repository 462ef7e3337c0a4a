package reduction

import (
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/network"
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/satformula"
)

// phi1Unicity builds Φ₁: at every position 0..length, the path occupies
// exactly one (node, height) state.
func phi1Unicity(ctx *satformula.Context, tn *network.Tunnel, length int) satformula.Lit {
	numNodes := tn.NumNodes()
	stackSize := StackSize(length)

	positionConstraints := make([]satformula.Lit, 0, length+1)
	for i := 0; i <= length; i++ {
		states := make([]satformula.Lit, 0, numNodes*stackSize)
		for node := 0; node < numNodes; node++ {
			for h := 0; h < stackSize; h++ {
				states = append(states, pathVar(ctx, network.Node(node), i, h))
			}
		}
		positionConstraints = append(positionConstraints, ctx.ExactlyOne(states...))
	}
	return ctx.And(positionConstraints...)
}
