package trace

import (
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"

	"github.com/hwmodelcheck/pdrcore/clausify"
	"github.com/hwmodelcheck/pdrcore/cube"
	"github.com/hwmodelcheck/pdrcore/gate"
	"github.com/hwmodelcheck/pdrcore/satsolver"
)

// Trace holds F[0..depth] plus F[∞] over a single netlist/solver pair.
// Frame k's cube list and activation literal are parallel slices;
// inf holds F[∞]'s cubes (no activation literal -- its clauses are
// asserted permanently true, see New).
type Trace struct {
	n      *gate.Netlist
	solver satsolver.Solver
	clz    *clausify.Clausifier

	frames  [][]cube.Cube
	actLits []satsolver.Lit

	inf []cube.Cube

	redundant bool // Params.RedundCubes, see AddCube
	log       *logiface.Logger[*stumpy.Event]
}

// Option configures a new Trace.
type Option func(*Trace)

// WithLogger installs a structured logger used to emit "unreachable
// cube" progress messages from AddCube. A nil logger (the default) is
// a silent no-op, matching the defensive-nil convention used
// throughout this module for optional collaborators (see
// logiface.Logger's own nil-receiver safety).
func WithLogger(log *logiface.Logger[*stumpy.Event]) Option {
	return func(tr *Trace) { tr.log = log }
}

// WithRedundantCubes enables the "redundant cubes" policy: a cube
// newly learned at frame k is also registered, gated by frame k-1's
// activation literal, to strengthen solver propagation for queries
// against the weaker frame.
func WithRedundantCubes(enabled bool) Option {
	return func(tr *Trace) { tr.redundant = enabled }
}

// New builds an empty Trace with F[0] already present and its
// activation literal allocated; package pdr asserts the initial-state
// predicate gated behind that literal (ActLit(0)) once the trace
// exists, rather than through AddCube -- Init is a fact about the
// frontier, not a learned blocking cube. clz must be built over n
// with solver as its target solver.
func New(n *gate.Netlist, solver satsolver.Solver, clz *clausify.Clausifier, opts ...Option) (*Trace, error) {
	if n == nil {
		return nil, ErrNilNetlist
	}
	if solver == nil {
		return nil, ErrNilSolver
	}
	if clz == nil {
		return nil, ErrNilClausifier
	}
	tr := &Trace{
		n:      n,
		solver: solver,
		clz:    clz,
	}
	for _, opt := range opts {
		opt(tr)
	}
	tr.frames = append(tr.frames, nil)
	tr.actLits = append(tr.actLits, solver.NewActLit())

	return tr, nil
}

// Depth returns the trace's current depth (the index of the last
// finite frame, F[depth]).
func (tr *Trace) Depth() int { return len(tr.frames) - 1 }

// ActLit returns frame k's activation literal -- assumed true by a
// query that wants frame k's (and by convention every frame j>=k's,
// see solveRelative in package pdr) blocking clauses active.
func (tr *Trace) ActLit(k int) satsolver.Lit { return tr.actLits[k] }

// FrameCubes returns a read-only view of the cubes tracked as first
// learned at frame k. Callers must not mutate the returned slice.
func (tr *Trace) FrameCubes(k int) []cube.Cube { return tr.frames[k] }

// InfCubes returns a read-only view of F[∞]'s cubes.
func (tr *Trace) InfCubes() []cube.Cube { return tr.inf }

// ActiveFrameLits returns the activation literals for every finite
// frame j with from <= j <= tr.Depth(), the assumption set a query at
// depth `from` needs to bring every frame j>=from's blocking clauses
// into scope (F[∞]'s clauses need no literal: see New).
func (tr *Trace) ActiveFrameLits(from int) []satsolver.Lit {
	if from < 0 {
		from = 0
	}
	lits := make([]satsolver.Lit, 0, len(tr.actLits)-from)
	for k := from; k < len(tr.actLits); k++ {
		lits = append(lits, tr.actLits[k])
	}
	return lits
}
