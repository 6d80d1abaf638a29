package pdr

import (
	"github.com/hwmodelcheck/pdrcore/clausify"
	"github.com/hwmodelcheck/pdrcore/cube"
	"github.com/hwmodelcheck/pdrcore/gate"
	"github.com/hwmodelcheck/pdrcore/satsolver"
)

// cubeLitsAt clausifies every literal of c on the given side, in c's
// own order.
func (e *Engine) cubeLitsAt(c cube.Cube, side clausify.Side) ([]satsolver.Lit, error) {
	out := make([]satsolver.Lit, c.Size())
	for i := 0; i < c.Size(); i++ {
		lit, err := e.clz.Clausify(c.At(i), 0, side)
		if err != nil {
			return nil, err
		}
		out[i] = lit
	}
	return out, nil
}

// cubeNextAssumps clausifies c's literals on the Next side, returning
// them alongside a map back from each resulting Lit to the gate.Ref
// it came from. Every literal is pushed as an individual assumption
// (never merged into one clause) so that an UNSAT core names exactly
// the cube literals that were actually needed.
func (e *Engine) cubeNextAssumps(c cube.Cube) ([]satsolver.Lit, map[satsolver.Lit]gate.Ref, error) {
	lits := make([]satsolver.Lit, 0, c.Size())
	ref := make(map[satsolver.Lit]gate.Ref, c.Size())
	for i := 0; i < c.Size(); i++ {
		r := c.At(i)
		lit, err := e.clz.Clausify(r, 0, clausify.Next)
		if err != nil {
			return nil, nil, err
		}
		lits = append(lits, lit)
		ref[lit] = r
	}
	return lits, ref, nil
}

// isInitial reports whether c intersects some initial state, queried
// against the dedicated initial-state solver (Init and constraints
// only, no transition relation).
func (e *Engine) isInitial(c cube.Cube) (bool, error) {
	assumps := make([]satsolver.Lit, 0, c.Size())
	for i := 0; i < c.Size(); i++ {
		lit, err := e.siClz.Clausify(c.At(i), 0, clausify.Current)
		if err != nil {
			return false, err
		}
		assumps = append(assumps, lit)
	}
	status, err := e.siSolver.Solve(assumps, e.budget())
	if err != nil {
		return false, err
	}
	if status == satsolver.StatusUnknown {
		return false, ErrSolverUnknown
	}
	return status == satsolver.StatusSAT, nil
}

// solveRelative asks whether s.Cube can be reached, one transition
// step away, from a state consistent with F[s.Frame] (ActiveFrameLits
// at s.Frame, i.e. every cube ever learned at that frame or above,
// plus F[inf]). When inductive is true it additionally assumes
// ¬s.Cube on the current side, turning the query into a genuine
// relative-induction check (excluding s itself as its own
// predecessor) via a single permanent clause gated by a fresh
// selector literal.
//
// StatusUNSAT returns a cube built from whichever of s.Cube's own
// literals the solver's conflict actually needed -- the generalized
// (shrunk) blocking cube. When inductive, that shrunk cube is checked
// against isInitial before being handed back: dropping literals only
// ever grows the set of states a cube denotes, so a core that the
// solver shrank enough can newly intersect Init even though s.Cube
// itself does not, and a caller that stores it as a blocking clause
// would then forbid a reachable initial state (the non-initiality
// invariant -- see DESIGN.md). When that happens this falls back to
// s.Cube's own literals, which the caller is responsible for having
// already established are not initial. StatusSAT leaves the
// predecessor in e.solver's model for the caller to read directly.
func (e *Engine) solveRelative(s cube.TCube, inductive bool) (satsolver.Status, cube.Cube, error) {
	from := s.Frame
	if from < 0 {
		from = 0
	}
	assumps := e.tr.ActiveFrameLits(from)

	if inductive && s.Cube.Size() > 0 {
		curLits, err := e.cubeLitsAt(s.Cube, clausify.Current)
		if err != nil {
			return satsolver.StatusUnknown, cube.Null, err
		}
		sel := e.solver.NewActLit()
		clause := make([]satsolver.Lit, 0, len(curLits)+1)
		clause = append(clause, sel.Not())
		for _, l := range curLits {
			clause = append(clause, l.Not())
		}
		if err := e.solver.AddClause(clause...); err != nil {
			return satsolver.StatusUnknown, cube.Null, err
		}
		assumps = append(assumps, sel)
	}

	nextLits, litRef, err := e.cubeNextAssumps(s.Cube)
	if err != nil {
		return satsolver.StatusUnknown, cube.Null, err
	}
	assumps = append(assumps, nextLits...)

	status, err := e.solve(assumps, e.budget())
	if err != nil {
		return satsolver.StatusUnknown, cube.Null, err
	}
	if status != satsolver.StatusUNSAT {
		return status, cube.Null, nil
	}

	conflict, err := e.solver.Conflict()
	if err != nil {
		return satsolver.StatusUnknown, cube.Null, err
	}
	var kept []gate.Ref
	for _, lit := range conflict {
		if r, ok := litRef[lit]; ok {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		kept = append(kept, s.Cube.Literals()...)
	}
	z := cube.New(kept...)

	if inductive {
		initHit, err := e.isInitial(z)
		if err != nil {
			return satsolver.StatusUnknown, cube.Null, err
		}
		if initHit {
			z = cube.New(s.Cube.Literals()...)
		}
	}

	return status, z, nil
}
