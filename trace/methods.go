package trace

import (
	"github.com/hwmodelcheck/pdrcore/clausify"
	"github.com/hwmodelcheck/pdrcore/cube"
	"github.com/hwmodelcheck/pdrcore/gate"
	"github.com/hwmodelcheck/pdrcore/satsolver"
)

// NewFrame appends an empty F[depth+1] with a fresh activation
// literal and returns the new depth.
//
// Complexity: O(1).
func (tr *Trace) NewFrame() int {
	tr.frames = append(tr.frames, nil)
	tr.actLits = append(tr.actLits, tr.solver.NewActLit())
	return tr.Depth()
}

// stateLit returns the solver literal for cube literal l (a signed
// flop/delay reference), clausified at the shared current-state
// copy -- package pdr always clausifies state variables at
// (frame=0, clausify.Current).
func (tr *Trace) stateLit(l gate.Ref) (satsolver.Lit, error) {
	g := tr.n.Gate(l)
	if g == nil || (g.Type() != gate.GateFlop && g.Type() != gate.GateDelay) {
		return 0, ErrNonStateLiteral
	}
	return tr.clz.Clausify(l, 0, clausify.Current)
}

func (tr *Trace) cubeLits(c cube.Cube) ([]satsolver.Lit, error) {
	out := make([]satsolver.Lit, c.Size())
	for i := 0; i < c.Size(); i++ {
		lit, err := tr.stateLit(c.At(i))
		if err != nil {
			return nil, err
		}
		out[i] = lit
	}
	return out, nil
}

// blockingClause returns the clause that forbids every literal of c
// from holding simultaneously, optionally guarded by a frame's
// activation literal (guard may be the zero Lit to omit the guard,
// as for F[∞]).
func blockingClause(lits []satsolver.Lit, guard satsolver.Lit) []satsolver.Lit {
	out := make([]satsolver.Lit, 0, len(lits)+1)
	for _, l := range lits {
		out = append(out, l.Not())
	}
	if guard != 0 {
		out = append(out, guard.Not())
	}
	return out
}

// AddCube inserts s.Cube into its frame, removing (from tracking, not
// from the solver -- clauses accumulate and are never retracted) every
// cube in F[k<=s.Frame] that s.Cube subsumes, and emits the
// corresponding blocking clause. subsumption, when false, skips the
// redundancy sweep (used by callers that have already established no
// cube can be subsumed, to save the scan).
//
// The sweep runs before s.Cube is appended to its own frame: s.Cube
// trivially subsumes itself, so sweeping after insertion would delete
// the very cube just added. This also makes AddCube the correct way
// to move a cube up a frame (add it at k+1; the sweep vacates the
// stale copy at k, since a cube subsumes an identical one).
func (tr *Trace) AddCube(s cube.TCube, subsumption bool) error {
	if !s.Valid() {
		return nil
	}
	lits, err := tr.cubeLits(s.Cube)
	if err != nil {
		return err
	}

	if s.Frame == cube.FrameInf {
		if subsumption {
			tr.removeSubsumedUpTo(s.Cube, tr.Depth())
		}
		tr.inf = append(tr.inf, s.Cube)
		if err := tr.solver.AddClause(blockingClause(lits, 0)...); err != nil {
			return err
		}
		tr.log.Info().Int(`size`, s.Cube.Size()).Log(`unreachable cube added to F[inf]`)
		return nil
	}

	if s.Frame < 0 || s.Frame > tr.Depth() {
		return ErrFrameOutOfRange
	}

	if subsumption {
		tr.removeSubsumedUpTo(s.Cube, s.Frame)
	}
	tr.frames[s.Frame] = append(tr.frames[s.Frame], s.Cube)
	if err := tr.solver.AddClause(blockingClause(lits, tr.actLits[s.Frame])...); err != nil {
		return err
	}
	if tr.redundant && s.Frame > 0 {
		if err := tr.solver.AddClause(blockingClause(lits, tr.actLits[s.Frame-1])...); err != nil {
			return err
		}
	}
	tr.log.Info().Int(`frame`, s.Frame).Int(`size`, s.Cube.Size()).Log(`unreachable cube added`)

	return nil
}

// Rebuild re-targets tr at a fresh solver/clausifier pair after a
// restart: the stored cubes and F[∞] survive (package pdr's restart
// policy never touches them), but every activation literal and
// blocking clause lives in the old, now-cleared solver, so both must
// be re-emitted.
func (tr *Trace) Rebuild(solver satsolver.Solver, clz *clausify.Clausifier) error {
	tr.solver = solver
	tr.clz = clz

	fresh := make([]satsolver.Lit, len(tr.actLits))
	for i := range fresh {
		fresh[i] = solver.NewActLit()
	}
	tr.actLits = fresh

	for k := 0; k <= tr.Depth(); k++ {
		for _, c := range tr.frames[k] {
			lits, err := tr.cubeLits(c)
			if err != nil {
				return err
			}
			if err := tr.solver.AddClause(blockingClause(lits, tr.actLits[k])...); err != nil {
				return err
			}
			if tr.redundant && k > 0 {
				if err := tr.solver.AddClause(blockingClause(lits, tr.actLits[k-1])...); err != nil {
					return err
				}
			}
		}
	}
	for _, c := range tr.inf {
		lits, err := tr.cubeLits(c)
		if err != nil {
			return err
		}
		if err := tr.solver.AddClause(blockingClause(lits, 0)...); err != nil {
			return err
		}
	}
	return nil
}

// removeSubsumedUpTo drops every cube in frames 0..upTo (inclusive)
// that c subsumes, since a cube known to hold at a higher frame
// covers every weaker lower-frame instance of itself for free.
func (tr *Trace) removeSubsumedUpTo(c cube.Cube, upTo int) {
	for k := 0; k <= upTo && k <= tr.Depth(); k++ {
		kept := tr.frames[k][:0]
		for _, other := range tr.frames[k] {
			if !cube.Subsumes(c, other) {
				kept = append(kept, other)
			}
		}
		tr.frames[k] = kept
	}
}

// IsBlocked reports whether s is already known blocked: either a
// stored cube in some frame j>=s.Frame subsumes s.Cube (a pure
// structural check), or the SAT query "states consistent with F[s.Frame]
// satisfying s.Cube" is UNSAT.
func (tr *Trace) IsBlocked(s cube.TCube, budget *satsolver.Budget) (bool, error) {
	if !s.Valid() {
		return false, nil
	}
	from := s.Frame
	if from == cube.FrameInf {
		from = tr.Depth()
	}
	for k := from; k <= tr.Depth(); k++ {
		for _, other := range tr.frames[k] {
			if cube.Subsumes(other, s.Cube) {
				return true, nil
			}
		}
	}
	for _, other := range tr.inf {
		if cube.Subsumes(other, s.Cube) {
			return true, nil
		}
	}

	lits, err := tr.cubeLits(s.Cube)
	if err != nil {
		return false, err
	}
	assumps := append(tr.ActiveFrameLits(from), lits...)
	status, err := tr.solver.Solve(assumps, budget)
	if err != nil {
		return false, err
	}
	return status == satsolver.StatusUNSAT, nil
}

// Converged scans frames 1..depth-1 for the first empty frame and
// returns its index; a frame that never received a cube counts as
// empty, whether or not a propagation sweep has run. Under
// the non-redundant storage convention (a cube lives only in the
// highest frame it is known to hold at), an empty frame k means every
// cube once unique to F[k] has since been shown to hold at F[k+1]
// too, which is exactly the set-theoretic equality F[k]=F[k+1]: nothing
// remains in F[k] that isn't already implied by the stronger frames
// above it.
func (tr *Trace) Converged() (int, bool) {
	for k := 1; k < tr.Depth(); k++ {
		if len(tr.frames[k]) == 0 {
			return k, true
		}
	}
	return 0, false
}

// SemanticCOI trims every stored cube (across all finite frames and
// F[∞]) to only the literals whose gate lies in bad's topological
// support, re-verifying relative induction of the trimmed cube via
// verify before committing the trim. A cube verify rejects is left
// untouched.
func (tr *Trace) SemanticCOI(bad gate.Ref, verify func(c cube.Cube, frame int) (bool, error)) error {
	coi, err := supportOf(tr.n, bad)
	if err != nil {
		return err
	}

	trim := func(c cube.Cube) cube.Cube {
		kept := make([]gate.Ref, 0, c.Size())
		changed := false
		for i := 0; i < c.Size(); i++ {
			l := c.At(i)
			if coi[l.PosRef().ID()] {
				kept = append(kept, l)
			} else {
				changed = true
			}
		}
		if !changed {
			return c
		}
		return cube.New(kept...)
	}

	sweep := func(frame int, cubes []cube.Cube) error {
		for i, c := range cubes {
			t := trim(c)
			if t.Equal(c) {
				continue
			}
			ok, err := verify(t, frame)
			if err != nil {
				return err
			}
			if ok {
				cubes[i] = t
			}
		}
		return nil
	}

	for k := 0; k <= tr.Depth(); k++ {
		if err := sweep(k, tr.frames[k]); err != nil {
			return err
		}
	}
	return sweep(int(cube.FrameInf), tr.inf)
}

// supportOf computes the set of gate ids in the topological support
// of r: every gate reachable by following fanins, treating flops and
// delays as leaves (their own next-state function is not part of a
// cube's COI -- a cube constrains their *current* value only).
func supportOf(n *gate.Netlist, r gate.Ref) (map[uint32]bool, error) {
	seen := make(map[uint32]bool)
	var visit func(id uint32)
	visit = func(id uint32) {
		if seen[id] {
			return
		}
		seen[id] = true
		g := n.Gate(gate.RefFromID(id))
		if g == nil {
			return
		}
		if g.Type() == gate.GateFlop || g.Type() == gate.GateDelay {
			return
		}
		for i := 0; i < g.Arity(); i++ {
			fi := g.Fanin(i)
			if !fi.IsNull() {
				visit(fi.ID())
			}
		}
	}
	if r.IsNull() {
		return seen, nil
	}
	visit(r.ID())
	return seen, nil
}

// ExtractInvariant builds a fresh gate.Netlist whose single PO is the
// conjunction of ¬c over every cube stored at frame k or above (plus
// F[∞]) -- an inductive strengthening of the property that holds at
// every reachable state. Flops are represented by fresh numbered
// GatePI gates (the invariant is a pure combinational predicate over
// flop values, not a sequential circuit of its own); Number mirrors
// the original flop's external Number so a caller can line the
// invariant back up against the original netlist's state variables.
func (tr *Trace) ExtractInvariant(k int) (*gate.Netlist, error) {
	out := gate.NewNetlist()
	pi := make(map[uint32]gate.Ref)

	lookup := func(r gate.Ref) (gate.Ref, error) {
		pos := r.PosRef()
		if existing, ok := pi[pos.ID()]; ok {
			if r.Inverted() {
				return existing.Not(), nil
			}
			return existing, nil
		}
		g := tr.n.Gate(pos)
		if g == nil {
			return gate.NullRef, ErrNonStateLiteral
		}
		var (
			newRef gate.Ref
			err    error
		)
		if g.Number() >= 0 {
			newRef, err = out.AddNumbered(gate.GatePI, g.Number())
		} else {
			newRef, err = out.Add(gate.GatePI)
		}
		if err != nil {
			return gate.NullRef, err
		}
		pi[pos.ID()] = newRef
		if r.Inverted() {
			return newRef.Not(), nil
		}
		return newRef, nil
	}

	conj := out.ConstTrue()
	addCubeNeg := func(c cube.Cube) error {
		// ¬c = ¬(l1 ∧ l2 ∧ ... ∧ lm) = ¬l1 ∨ ¬l2 ∨ ... ∨ ¬lm, built as
		// nested NAND-of-ANDs since GateAnd is the only primitive: an
		// m-way OR is ¬(¬x1 ∧ ¬x2 ∧ ... ∧ ¬xm).
		if c.Size() == 0 {
			// the empty cube subsumes every state: ¬(true) = false,
			// i.e. the invariant collapses to "no state is safe",
			// which cannot happen for a real proof (the empty cube
			// would make F[0] itself inconsistent) but is handled
			// for robustness.
			conj = out.ConstFalse()
			return nil
		}
		var orAcc gate.Ref
		for i := 0; i < c.Size(); i++ {
			lit, err := lookup(c.At(i))
			if err != nil {
				return err
			}
			negLit := lit.Not()
			if i == 0 {
				orAcc = negLit
			} else {
				andRef, err := out.Add(gate.GateAnd, orAcc.Not(), negLit.Not())
				if err != nil {
					return err
				}
				orAcc = andRef.Not()
			}
		}
		if conj == out.ConstTrue() {
			conj = orAcc
			return nil
		}
		andRef, err := out.Add(gate.GateAnd, conj, orAcc)
		if err != nil {
			return err
		}
		conj = andRef
		return nil
	}

	for j := k; j <= tr.Depth(); j++ {
		for _, c := range tr.frames[j] {
			if err := addCubeNeg(c); err != nil {
				return nil, err
			}
		}
	}
	for _, c := range tr.inf {
		if err := addCubeNeg(c); err != nil {
			return nil, err
		}
	}

	if _, err := out.Add(gate.GatePO, conj); err != nil {
		return nil, err
	}
	return out, nil
}
