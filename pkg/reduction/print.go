package reduction

import (
	"fmt"
	"io"

	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/network"
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/satformula"
)

// PrintModel writes a human-readable dump of a model's path and stack
// contents at every position 0..length to w. Unlike DecodePath, PrintModel
// never aborts on a malformed model: it is a diagnostic view, so it reports
// "No node at that position!", "Several pair node,height!", and
// "Warning: ill-defined stack" inline and keeps going, mirroring the
// original reduction's print routine.
func PrintModel(w io.Writer, ctx *satformula.Context, model *satformula.Model, tn *network.Tunnel, length int) error {
	stackSize := StackSize(length)

	for pos := 0; pos <= length; pos++ {
		if _, err := fmt.Fprintf(w, "At pos %d:\nState: ", pos); err != nil {
			return err
		}

		numSeen := 0
		for node := 0; node < tn.NumNodes(); node++ {
			for h := 0; h < stackSize; h++ {
				if model.Value(pathVar(ctx, network.Node(node), pos, h)) {
					if _, err := fmt.Fprintf(w, "(%s,%d) ", tn.NodeName(network.Node(node)), h); err != nil {
						return err
					}
					numSeen++
				}
			}
		}
		if numSeen == 0 {
			if _, err := fmt.Fprintln(w, "No node at that position!"); err != nil {
				return err
			}
		} else if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if numSeen > 1 {
			if _, err := fmt.Fprintln(w, "Several pair node,height!"); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprint(w, "Stack: "); err != nil {
			return err
		}
		misdefined := false
		aboveTop := false
		for h := 0; h < stackSize; h++ {
			has4 := model.Value(fourVar(ctx, pos, h))
			has6 := model.Value(sixVar(ctx, pos, h))
			switch {
			case has4 && has6:
				fmt.Fprint(w, "|X")
				misdefined = true
			case has4:
				fmt.Fprint(w, "|4")
				if aboveTop {
					misdefined = true
				}
			case has6:
				fmt.Fprint(w, "|6")
				if aboveTop {
					misdefined = true
				}
			default:
				fmt.Fprint(w, "| ")
				aboveTop = true
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if misdefined {
			if _, err := fmt.Fprintln(w, "Warning: ill-defined stack"); err != nil {
				return err
			}
		}
	}
	return nil
}
