// Package satformula builds propositional formulas over named boolean
// variables and hands them to an external SAT engine. It wraps
// github.com/go-air/gini's logic.C combinational-circuit builder (which does
// Tseitin CNF conversion) and gini.Gini (the solver itself), so callers never
// touch CNF clauses or the solver's literal representation directly.
//
// A Context is not safe for concurrent use by multiple goroutines. Callers
// that need to solve several independent formulas concurrently should build
// one Context per goroutine.
package satformula

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Lit is a literal in the formula's combinational circuit: either a named
// boolean variable or the result of combining other literals with And, Or,
// Not, and friends.
type Lit = z.Lit

// Context accumulates named variables and the gates built over them, then
// drives a solver over the resulting circuit.
type Context struct {
	c     *logic.C
	names map[string]Lit
}

// NewContext creates an empty formula-building context.
func NewContext() *Context {
	return &Context{
		c:     logic.NewC(),
		names: make(map[string]Lit),
	}
}

// Var returns the literal for the named boolean variable, creating it on
// first use. Calling Var with the same name always returns the same
// literal, so callers can name a variable once per call site without
// memoizing it themselves.
func (ctx *Context) Var(name string) Lit {
	if lit, ok := ctx.names[name]; ok {
		return lit
	}
	lit := ctx.c.Lit()
	ctx.names[name] = lit
	return lit
}

// True returns the circuit's constant-true literal.
func (ctx *Context) True() Lit { return ctx.c.T }

// False returns the circuit's constant-false literal.
func (ctx *Context) False() Lit { return ctx.c.F }

// Not returns the negation of a.
func (ctx *Context) Not(a Lit) Lit { return a.Not() }

// And returns the conjunction of lits. An empty argument list returns True.
func (ctx *Context) And(lits ...Lit) Lit { return ctx.c.Ands(lits...) }

// Or returns the disjunction of lits. An empty argument list returns False.
func (ctx *Context) Or(lits ...Lit) Lit { return ctx.c.Ors(lits...) }

// Implies returns a => b, encoded as ¬a ∨ b.
func (ctx *Context) Implies(a, b Lit) Lit { return ctx.c.Implies(a, b) }

// Eq returns a ⇔ b, encoded as (¬a ∨ b) ∧ (¬b ∨ a).
func (ctx *Context) Eq(a, b Lit) Lit {
	return ctx.c.Ands(ctx.c.Ors(a.Not(), b), ctx.c.Ors(b.Not(), a))
}

// ExactlyOne returns a literal true exactly when precisely one of lits is
// true: the conjunction of an at-least-one clause (the plain disjunction)
// and, for every pair, an at-most-one clause ¬(lits[i] ∧ lits[j]). logic.C
// does expose a CardSort gadget for general cardinality constraints, but it
// is built for sorting-network-style comparisons against a threshold, not
// for producing a single output literal an And/Or/Implies-based circuit can
// consume directly; the small variable families this package builds
// ExactlyOne over (at most a handful of candidate states per position) make
// the quadratic pairwise encoding cheap, so it stays the simpler choice. An
// empty argument list is unsatisfiable (there is nothing to be the one true
// literal), so it returns False.
func (ctx *Context) ExactlyOne(lits ...Lit) Lit {
	if len(lits) == 0 {
		return ctx.c.F
	}
	clauses := make([]Lit, 0, 1+len(lits)*(len(lits)-1)/2)
	clauses = append(clauses, ctx.c.Ors(lits...))
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			clauses = append(clauses, ctx.c.Ors(lits[i].Not(), lits[j].Not()))
		}
	}
	return ctx.c.Ands(clauses...)
}

// Status is the outcome of a Solve call.
type Status int

const (
	// Unknown means the solver could not determine satisfiability (gini's
	// Solve returns 0 only under resource limits this package never sets,
	// but the case is handled defensively rather than assumed impossible).
	Unknown Status = iota
	// Sat means a satisfying model was found.
	Sat
	// Unsat means no satisfying model exists.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	default:
		return "unknown"
	}
}

// Model is a satisfying assignment returned by Solve.
type Model struct {
	g *gini.Gini
}

// Value reports the boolean value a literal takes in the model.
func (m *Model) Value(lit Lit) bool {
	return m.g.Value(lit)
}

// Solve converts the part of the circuit reachable from root to CNF, asserts
// root, and runs the solver. It builds a fresh solver every call: Context
// only ever needs one Solve per formula, and a fresh solver avoids carrying
// clause-learning state from one formula into an unrelated one.
func (ctx *Context) Solve(root Lit) (Status, *Model, error) {
	g := gini.New()
	ctx.c.ToCnfFrom(g, root)
	g.Assume(root)
	switch g.Solve() {
	case 1:
		return Sat, &Model{g: g}, nil
	case -1:
		return Unsat, nil, nil
	default:
		return Unknown, nil, fmt.Errorf("satformula: solver returned an indeterminate result")
	}
}
