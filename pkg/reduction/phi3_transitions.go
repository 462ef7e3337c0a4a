package reduction

import (
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/network"
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/satformula"
)

var pushActions = []network.Action{network.Push4_4, network.Push4_6, network.Push6_4, network.Push6_6}
var popActions = []network.Action{network.Pop4_4, network.Pop4_6, network.Pop6_4, network.Pop6_6}

// phi3Transitions builds Φ₃ fused with Φ₇: transition legality and
// successor existence. For every (position, node, height) triple it forbids
// height deltas outside {-1, 0, +1}, forbids stepping to a non-neighbor
// under any action, requires that a legal per-edge transition be backed by
// an action the source node is actually enabled for (with the top-of-stack
// symbol consistent with that action), and finally requires that being at a
// state implies some successor state is reachable — the original's
// per-state "you must go somewhere" clause, Φ₇, built in the same pass
// since it shares the same edge/action bookkeeping as Φ₃.
func phi3Transitions(ctx *satformula.Context, tn *network.Tunnel, length int) satformula.Lit {
	numNodes := tn.NumNodes()
	stackSize := StackSize(length)

	var clauses []satformula.Lit

	// Forbid transitions whose height delta falls outside {-1, 0, +1}.
	for i := 0; i < length; i++ {
		for node := 0; node < numNodes; node++ {
			for h := 0; h < stackSize; h++ {
				x := pathVar(ctx, network.Node(node), i, h)
				for nextNode := 0; nextNode < numNodes; nextNode++ {
					for hPrime := 0; hPrime < stackSize; hPrime++ {
						delta := hPrime - h
						if delta < -1 || delta > 1 {
							xNext := pathVar(ctx, network.Node(nextNode), i+1, hPrime)
							clauses = append(clauses, ctx.Not(ctx.And(x, xNext)))
						}
					}
				}
			}
		}
	}

	// Per-edge legality and action-consistency, plus successor existence.
	for i := 0; i < length; i++ {
		for node := 0; node < numNodes; node++ {
			for haut := 0; haut < stackSize; haut++ {
				x := pathVar(ctx, network.Node(node), i, haut)

				for nextNode := 0; nextNode < numNodes; nextNode++ {
					if !tn.IsEdge(network.Node(node), network.Node(nextNode)) {
						sameHeight := pathVar(ctx, network.Node(nextNode), i+1, haut)
						clauses = append(clauses, ctx.Not(ctx.And(x, sameHeight)))
						if haut+1 < stackSize {
							pushState := pathVar(ctx, network.Node(nextNode), i+1, haut+1)
							clauses = append(clauses, ctx.Not(ctx.And(x, pushState)))
						}
						if haut > 0 {
							popState := pathVar(ctx, network.Node(nextNode), i+1, haut-1)
							clauses = append(clauses, ctx.Not(ctx.And(x, popState)))
						}
						continue
					}

					// TRANSMIT: height unchanged; the top symbol must match
					// one of the node's enabled transmit actions.
					sameHeight := pathVar(ctx, network.Node(nextNode), i+1, haut)
					transmitTransition := ctx.And(x, sameHeight)
					var transmitConds []satformula.Lit
					if tn.HasAction(network.Node(node), network.Transmit4) {
						transmitConds = append(transmitConds, fourVar(ctx, i, haut))
					}
					if tn.HasAction(network.Node(node), network.Transmit6) {
						transmitConds = append(transmitConds, sixVar(ctx, i, haut))
					}
					if len(transmitConds) > 0 {
						clauses = append(clauses, ctx.Implies(transmitTransition, ctx.Or(transmitConds...)))
					} else {
						clauses = append(clauses, ctx.Not(transmitTransition))
					}

					// PUSH: height increases by one.
					if haut+1 < stackSize {
						pushState := pathVar(ctx, network.Node(nextNode), i+1, haut+1)
						pushTransition := ctx.And(x, pushState)
						var pushConds []satformula.Lit
						for _, a := range pushActions {
							if tn.HasAction(network.Node(node), a) {
								pushConds = append(pushConds, ctx.And(
									symbolVar(ctx, a.Reads(), i, haut),
									symbolVar(ctx, a.Writes(), i+1, haut+1),
								))
							}
						}
						if len(pushConds) > 0 {
							clauses = append(clauses, ctx.Implies(pushTransition, ctx.Or(pushConds...)))
						} else {
							clauses = append(clauses, ctx.Not(pushTransition))
						}
					}

					// POP: height decreases by one.
					if haut > 0 {
						popState := pathVar(ctx, network.Node(nextNode), i+1, haut-1)
						popTransition := ctx.And(x, popState)
						var popConds []satformula.Lit
						for _, a := range popActions {
							if tn.HasAction(network.Node(node), a) {
								popConds = append(popConds, ctx.And(
									symbolVar(ctx, a.Reads(), i, haut),
									symbolVar(ctx, a.Writes(), i, haut-1),
								))
							}
						}
						if len(popConds) > 0 {
							clauses = append(clauses, ctx.Implies(popTransition, ctx.Or(popConds...)))
						} else {
							clauses = append(clauses, ctx.Not(popTransition))
						}
					}
				}

				// Φ₇: being at this state implies some successor state
				// exists — some neighbor, reached by an action the node is
				// actually enabled for.
				var successors []satformula.Lit
				for nextNode := 0; nextNode < numNodes; nextNode++ {
					if !tn.IsEdge(network.Node(node), network.Node(nextNode)) {
						continue
					}
					if tn.HasAction(network.Node(node), network.Transmit4) || tn.HasAction(network.Node(node), network.Transmit6) {
						successors = append(successors, pathVar(ctx, network.Node(nextNode), i+1, haut))
					}
					if haut+1 < stackSize && hasAnyAction(tn, network.Node(node), pushActions) {
						successors = append(successors, pathVar(ctx, network.Node(nextNode), i+1, haut+1))
					}
					if haut > 0 && hasAnyAction(tn, network.Node(node), popActions) {
						successors = append(successors, pathVar(ctx, network.Node(nextNode), i+1, haut-1))
					}
				}
				if len(successors) > 0 {
					clauses = append(clauses, ctx.Implies(x, ctx.Or(successors...)))
				}
			}
		}
	}

	return ctx.And(clauses...)
}

func hasAnyAction(tn *network.Tunnel, n network.Node, actions []network.Action) bool {
	for _, a := range actions {
		if tn.HasAction(n, a) {
			return true
		}
	}
	return false
}
