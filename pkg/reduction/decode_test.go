package reduction

import (
	"errors"
	"testing"

	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/network"
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/satformula"
)

func twoNodeNetwork(t *testing.T) *network.Tunnel {
	t.Helper()
	tn := network.New()
	a, _ := tn.AddNode("A")
	b, _ := tn.AddNode("B")
	if err := tn.SetEndpoints(a, b); err != nil {
		t.Fatal(err)
	}
	return tn
}

func TestDecodePathRejectsNoState(t *testing.T) {
	tn := twoNodeNetwork(t)
	length := 1
	ctx := satformula.NewContext()

	a := network.Node(0)
	b := network.Node(1)
	// Force every state at position 0 false so the model has none there,
	// rather than relying on the solver's default assignment for variables
	// never wired into the formula.
	root := ctx.And(ctx.Not(pathVar(ctx, a, 0, 0)), ctx.Not(pathVar(ctx, b, 0, 0)))

	status, model, err := ctx.Solve(root)
	if err != nil {
		t.Fatal(err)
	}
	if status != satformula.Sat {
		t.Fatalf("status = %v, want sat", status)
	}

	_, err = DecodePath(ctx, model, tn, length)
	if !errors.Is(err, ErrMalformedModel) {
		t.Fatalf("err = %v, want ErrMalformedModel", err)
	}
}

func TestDecodePathRejectsMultipleStates(t *testing.T) {
	tn := twoNodeNetwork(t)
	length := 1
	ctx := satformula.NewContext()

	a := network.Node(0)
	b := network.Node(1)
	root := ctx.And(pathVar(ctx, a, 0, 0), pathVar(ctx, b, 0, 0))

	status, model, err := ctx.Solve(root)
	if err != nil {
		t.Fatal(err)
	}
	if status != satformula.Sat {
		t.Fatalf("status = %v, want sat", status)
	}

	_, err = DecodePath(ctx, model, tn, length)
	if !errors.Is(err, ErrMalformedModel) {
		t.Fatalf("err = %v, want ErrMalformedModel", err)
	}
}
