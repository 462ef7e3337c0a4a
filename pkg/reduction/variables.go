package reduction

import (
	"fmt"

	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/network"
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/satformula"
)

// StackSize returns the number of addressable stack cells for a path of the
// given length: cells 0 through StackSize(length)-1.
func StackSize(length int) int {
	return length/2 + 1
}

// pathVarName names the variable x_{node,pos,height}: true when the path is
// at node, at position pos, with the stack's highest occupied cell at
// height.
func pathVarName(node network.Node, pos, height int) string {
	return fmt.Sprintf("x#%d#%d#%d", node, pos, height)
}

// fourVarName names the variable y4_{pos,height}: true when the stack cell
// at height holds the symbol 4, at path position pos.
func fourVarName(pos, height int) string {
	return fmt.Sprintf("y4#%d#%d", pos, height)
}

// sixVarName names the variable y6_{pos,height}: true when the stack cell
// at height holds the symbol 6, at path position pos.
func sixVarName(pos, height int) string {
	return fmt.Sprintf("y6#%d#%d", pos, height)
}

func pathVar(ctx *satformula.Context, node network.Node, pos, height int) satformula.Lit {
	return ctx.Var(pathVarName(node, pos, height))
}

func fourVar(ctx *satformula.Context, pos, height int) satformula.Lit {
	return ctx.Var(fourVarName(pos, height))
}

func sixVar(ctx *satformula.Context, pos, height int) satformula.Lit {
	return ctx.Var(sixVarName(pos, height))
}

// symbolVar returns the y4 or y6 literal for sym at (pos, height).
func symbolVar(ctx *satformula.Context, sym network.Symbol, pos, height int) satformula.Lit {
	switch sym {
	case network.Four:
		return fourVar(ctx, pos, height)
	case network.Six:
		return sixVar(ctx, pos, height)
	default:
		panic(fmt.Sprintf("reduction: unknown stack symbol %v", sym))
	}
}
