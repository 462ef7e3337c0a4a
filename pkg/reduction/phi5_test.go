package reduction

import (
	"testing"

	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/satformula"
)

// TestPhi5EntailedByPhi3 checks that Φ₃ ∧ Φ₄ ∧ Φ₆ entails Φ₅ on a small
// network: the negation of that implication must be unsatisfiable. Φ₅ is
// built but never conjoined into Reduce's output (see phi5_topop.go); this
// is the mechanical check backing that omission.
func TestPhi5EntailedByPhi3(t *testing.T) {
	tn, length := buildPushPopRoundTrip(t)
	ctx := satformula.NewContext()

	phi3 := phi3Transitions(ctx, tn, length)
	phi4 := phi4WellFormedStack(ctx, tn, length)
	phi6 := phi6StackEvolution(ctx, tn, length)
	phi5 := phi5TopOperation(ctx, tn, length)

	lhs := ctx.And(phi3, phi4, phi6)
	implication := ctx.Implies(lhs, phi5)
	negation := ctx.Not(implication)

	status, _, err := ctx.Solve(negation)
	if err != nil {
		t.Fatal(err)
	}
	if status != satformula.Unsat {
		t.Fatalf("Φ₃∧Φ₄∧Φ₆ → Φ₅ is not valid: found a model of its negation")
	}
}
