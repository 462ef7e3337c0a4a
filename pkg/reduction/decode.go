package reduction

import (
	"errors"
	"fmt"

	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/network"
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/satformula"
)

// ErrMalformedModel is returned by DecodePath when a model does not
// correspond to a well-formed path: some position has zero, or more than
// one, (node, height) state true — a violation of the unicity Φ₁ enforces,
// which should not occur for a model the solver itself produced but is
// checked for rather than assumed away, since DecodePath is a public
// library entry point callers may feed an arbitrary model to.
var ErrMalformedModel = errors.New("reduction: model is malformed")

// Step is one edge of a decoded path: taking Action from Src to Dst.
type Step struct {
	Action network.Action
	Src    network.Node
	Dst    network.Node
}

// DecodePath reads the (node, height) state a satisfying model assigns at
// every position 0..length and reconstructs the sequence of actions taken.
// It tells transmit, push, and pop transitions apart by comparing each
// position's stack height to the next, exactly as the original reduction's
// decoder dispatches on src_height vs tgt_height.
func DecodePath(ctx *satformula.Context, model *satformula.Model, tn *network.Tunnel, length int) ([]Step, error) {
	stackSize := StackSize(length)

	state := func(pos int) (network.Node, int, error) {
		found := false
		var node network.Node
		var height int
		for n := 0; n < tn.NumNodes(); n++ {
			for h := 0; h < stackSize; h++ {
				if model.Value(pathVar(ctx, network.Node(n), pos, h)) {
					if found {
						return 0, 0, fmt.Errorf("decode path: position %d: %w: more than one state", pos, ErrMalformedModel)
					}
					found = true
					node, height = network.Node(n), h
				}
			}
		}
		if !found {
			return 0, 0, fmt.Errorf("decode path: position %d: %w: no state", pos, ErrMalformedModel)
		}
		return node, height, nil
	}

	steps := make([]Step, 0, length)
	for pos := 0; pos < length; pos++ {
		src, srcHeight, err := state(pos)
		if err != nil {
			return nil, err
		}
		dst, dstHeight, err := state(pos + 1)
		if err != nil {
			return nil, err
		}

		var action network.Action
		switch {
		case srcHeight == dstHeight:
			if model.Value(fourVar(ctx, pos, srcHeight)) {
				action = network.Transmit4
			} else {
				action = network.Transmit6
			}
		case srcHeight == dstHeight-1:
			if model.Value(fourVar(ctx, pos, srcHeight)) {
				if model.Value(fourVar(ctx, pos+1, dstHeight)) {
					action = network.Push4_4
				} else {
					action = network.Push4_6
				}
			} else if model.Value(fourVar(ctx, pos+1, dstHeight)) {
				action = network.Push6_4
			} else {
				action = network.Push6_6
			}
		case srcHeight == dstHeight+1:
			if model.Value(fourVar(ctx, pos, srcHeight)) {
				if model.Value(fourVar(ctx, pos+1, dstHeight)) {
					action = network.Pop4_4
				} else {
					action = network.Pop4_6
				}
			} else if model.Value(fourVar(ctx, pos+1, dstHeight)) {
				action = network.Pop6_4
			} else {
				action = network.Pop6_6
			}
		default:
			return nil, fmt.Errorf("decode path: position %d: %w: height jumped from %d to %d", pos, ErrMalformedModel, srcHeight, dstHeight)
		}

		steps = append(steps, Step{Action: action, Src: src, Dst: dst})
	}
	return steps, nil
}
