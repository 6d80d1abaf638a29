package clausify

import (
	"fmt"

	"github.com/hwmodelcheck/pdrcore/gate"
	"github.com/hwmodelcheck/pdrcore/satsolver"
)

// New builds a Clausifier over n, emitting clauses into solver. It
// snapshots n.Generation(); any subsequent structural mutation of n
// makes this Clausifier stale (ErrStaleGeneration on next use).
func New(n *gate.Netlist, solver satsolver.Solver, opts ...Option) (*Clausifier, error) {
	if n == nil {
		return nil, ErrNilNetlist
	}
	if solver == nil {
		return nil, ErrNilSolver
	}
	c := &Clausifier{
		n:      n,
		solver: solver,
		gen:    n.Generation(),
		lits:   make(map[key]satsolver.Lit),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Stale reports whether the underlying netlist has mutated since this
// Clausifier was built.
func (c *Clausifier) Stale() bool { return c.n.Generation() != c.gen }

func (c *Clausifier) checkStale() error {
	if c.Stale() {
		return ErrStaleGeneration
	}
	return nil
}

// Clausify returns a solver literal p such that p is true in every
// model iff r evaluates true, at the given unrolled frame and side.
// Results are memoised per (frame, side, r.PosRef()); repeated calls
// with the same arguments are O(1).
func (c *Clausifier) Clausify(r gate.Ref, frame int, side Side) (satsolver.Lit, error) {
	if err := c.checkStale(); err != nil {
		return 0, err
	}
	if r.IsNull() {
		return 0, fmt.Errorf("clausify: Clausify: %w", gate.ErrNullFanin)
	}
	lit, err := c.clausifyPos(r.PosRef(), frame, side)
	if err != nil {
		return 0, err
	}
	if r.Inverted() {
		lit = lit.Not()
	}
	return lit, nil
}

// Lookup returns the already-memoised literal for r at (frame, side)
// without clausifying anything, reporting false if it is absent.
// Used by invariant/COI extraction, which must never force new
// variables into existence.
func (c *Clausifier) Lookup(r gate.Ref, frame int, side Side) (satsolver.Lit, bool) {
	lit, ok := c.lits[key{frame: frame, side: side, gate: r.ID()}]
	if !ok {
		return 0, false
	}
	if r.Inverted() {
		lit = lit.Not()
	}
	return lit, true
}

func (c *Clausifier) clausifyPos(pos gate.Ref, frame int, side Side) (satsolver.Lit, error) {
	k := key{frame: frame, side: side, gate: pos.ID()}
	if lit, ok := c.lits[k]; ok {
		return lit, nil
	}
	if c.abort != nil && c.abort() {
		return 0, ErrAborted
	}

	g := c.n.Gate(pos)
	if g == nil {
		return 0, fmt.Errorf("clausify: %w", gate.ErrGateNotFound)
	}

	var lit satsolver.Lit
	var err error

	switch g.Type() {
	case gate.GateConst:
		lit, err = c.trueLit()
	case gate.GatePI:
		lit = c.freshVar()
	case gate.GateFlop, gate.GateDelay:
		lit, err = c.clausifyRegister(g, frame, side)
	case gate.GateAnd:
		lit, err = c.clausifyAnd(g, frame, side)
	case gate.GateMux:
		lit, err = c.clausifyMux(g, frame, side)
	case gate.GatePO, gate.GateBad, gate.GateConstraint:
		lit, err = c.Clausify(g.Fanin(0), frame, side)
	default:
		err = fmt.Errorf("clausify: gate %d (%s): %w", pos.ID(), g.Type(), ErrUnsupportedGateType)
	}
	if err != nil {
		return 0, err
	}

	c.lits[k] = lit
	return lit, nil
}

// clausifyRegister handles GateFlop/GateDelay as a *source*: a flop's
// own current-frame value, not its next-state function (callers
// reach the next-state function via g.Fanin(0), an ordinary
// combinational Ref). A register's value is always a fresh variable,
// even at frame 0 with a concrete Init: Init is a fact about the
// reachable-state frontier, not a structural constant, and callers
// that need it enforced assert it explicitly, gated to the query it
// actually applies to (see pdr's assertInitialState/buildInitialState).
func (c *Clausifier) clausifyRegister(g *gate.Gate, frame int, side Side) (satsolver.Lit, error) {
	return c.freshVar(), nil
}

// clausifyAnd emits the standard three Tseitin clauses for w = a ∧ b:
//
//	(¬w ∨ a), (¬w ∨ b), (w ∨ ¬a ∨ ¬b)
func (c *Clausifier) clausifyAnd(g *gate.Gate, frame int, side Side) (satsolver.Lit, error) {
	a, err := c.Clausify(g.Fanin(0), frame, side)
	if err != nil {
		return 0, err
	}
	b, err := c.Clausify(g.Fanin(1), frame, side)
	if err != nil {
		return 0, err
	}
	w := c.freshVar()
	if err := c.solver.AddClause(w.Not(), a); err != nil {
		return 0, err
	}
	if err := c.solver.AddClause(w.Not(), b); err != nil {
		return 0, err
	}
	if err := c.solver.AddClause(w, a.Not(), b.Not()); err != nil {
		return 0, err
	}
	return w, nil
}

// clausifyMux emits the Tseitin encoding for w = sel ? d1 : d0 (fanin
// order: select, data-if-true, data-if-false).
func (c *Clausifier) clausifyMux(g *gate.Gate, frame int, side Side) (satsolver.Lit, error) {
	sel, err := c.Clausify(g.Fanin(0), frame, side)
	if err != nil {
		return 0, err
	}
	d1, err := c.Clausify(g.Fanin(1), frame, side)
	if err != nil {
		return 0, err
	}
	d0, err := c.Clausify(g.Fanin(2), frame, side)
	if err != nil {
		return 0, err
	}
	w := c.freshVar()
	if err := c.solver.AddClause(w.Not(), sel.Not(), d1); err != nil {
		return 0, err
	}
	if err := c.solver.AddClause(w.Not(), sel, d0); err != nil {
		return 0, err
	}
	if err := c.solver.AddClause(w, sel.Not(), d1.Not()); err != nil {
		return 0, err
	}
	if err := c.solver.AddClause(w, sel, d0.Not()); err != nil {
		return 0, err
	}
	return w, nil
}

func (c *Clausifier) freshVar() satsolver.Lit {
	return satsolver.NewLit(c.solver.AddVar(), false)
}

// trueLit returns (allocating once, lazily) a solver literal pinned
// true by a permanent unit clause -- the solver-level stand-in for
// the netlist's constant-true gate.
func (c *Clausifier) trueLit() (satsolver.Lit, error) {
	constKey := key{frame: -1, side: Current, gate: 0}
	if lit, ok := c.lits[constKey]; ok {
		return lit, nil
	}
	lit := c.freshVar()
	if err := c.solver.AddClause(lit); err != nil {
		return 0, err
	}
	c.lits[constKey] = lit
	return lit, nil
}
