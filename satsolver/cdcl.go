// cdcl.go — a compact, from-scratch CDCL SAT solver: full clause-set
// unit propagation (no two-watched-literal indexing -- see doc.go for
// why a from-scratch solver exists at all), first-UIP conflict
// analysis, non-chronological backtracking, and VSIDS-lite variable
// activity. Assumptions are pushed one at a time as decisions before
// general search begins; the moment any assumption conflicts with
// already-implied facts, the final conflict is reported as the
// subset of the given assumptions the conflict's resolution actually
// touched, so a caller can drop the rest.
package satsolver

import (
	"fmt"

	"github.com/hwmodelcheck/pdrcore/gate"
)

type assignState int8

const (
	undef assignState = iota
	isTrue
	isFalse
)

type clause struct {
	lits   []Lit
	learnt bool
}

// CDCL is the default, dependency-free Solver implementation.
type CDCL struct {
	clauses []*clause
	unsat   bool // a permanently empty clause was added

	assign []assignState // index by Var
	level  []int
	reason []*clause
	trail  []Lit

	trailLim []int
	activity []float64

	model        map[Var]gate.Lbool
	conflictLits []Lit
}

// NewCDCL returns an empty solver with no variables or clauses.
func NewCDCL() *CDCL {
	return &CDCL{
		assign:   []assignState{undef}, // index 0 unused
		level:    []int{0},
		reason:   []*clause{nil},
		activity: []float64{0},
	}
}

// AddVar allocates a fresh variable.
func (s *CDCL) AddVar() Var {
	s.assign = append(s.assign, undef)
	s.level = append(s.level, 0)
	s.reason = append(s.reason, nil)
	s.activity = append(s.activity, 0)
	return Var(len(s.assign) - 1)
}

func (s *CDCL) numVars() int { return len(s.assign) - 1 }

// AddClause adds a permanent clause. A clause with a literal and its
// complement is a tautology and is silently dropped (it can never be
// falsified). An empty clause marks the database permanently
// unsatisfiable.
func (s *CDCL) AddClause(lits ...Lit) error {
	seen := make(map[Lit]bool, len(lits))
	deduped := lits[:0:0]
	for _, l := range lits {
		if seen[l.Not()] {
			return nil // tautology: clause always satisfied, drop it
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		deduped = append(deduped, l)
	}
	if len(deduped) == 0 {
		s.unsat = true
		return nil
	}
	for _, l := range deduped {
		if int(l.Var()) > s.numVars() {
			return fmt.Errorf("gate: AddClause: %w", ErrUnknownVar)
		}
	}
	s.clauses = append(s.clauses, &clause{lits: deduped})

	return nil
}

func (s *CDCL) valueOfVar(v Var) gate.Lbool {
	switch s.assign[v] {
	case isTrue:
		return gate.LTrue
	case isFalse:
		return gate.LFalse
	default:
		return gate.LUndef
	}
}

func (s *CDCL) valueOfLit(l Lit) gate.Lbool {
	v := s.valueOfVar(l.Var())
	if v == gate.LUndef {
		return gate.LUndef
	}
	truth := v == gate.LTrue
	if l.Negated() {
		truth = !truth
	}
	if truth {
		return gate.LTrue
	}
	return gate.LFalse
}

func (s *CDCL) decisionLevel() int { return len(s.trailLim) }

func (s *CDCL) newDecisionLevel() { s.trailLim = append(s.trailLim, len(s.trail)) }

func (s *CDCL) assignLit(l Lit, reason *clause) {
	v := l.Var()
	if l.Negated() {
		s.assign[v] = isFalse
	} else {
		s.assign[v] = isTrue
	}
	s.level[v] = s.decisionLevel()
	s.reason[v] = reason
	s.trail = append(s.trail, l)
}

func (s *CDCL) backtrackTo(lvl int) {
	if lvl >= s.decisionLevel() {
		return
	}
	cut := s.trailLim[lvl]
	for i := len(s.trail) - 1; i >= cut; i-- {
		v := s.trail[i].Var()
		s.assign[v] = undef
		s.reason[v] = nil
		s.level[v] = 0
	}
	s.trail = s.trail[:cut]
	s.trailLim = s.trailLim[:lvl]
}

// propagate runs unit propagation to a fixpoint over the whole clause
// set, returning the first clause found fully false (a conflict), or
// nil once no further forced assignment exists.
//
// Complexity: O(rounds * clauses * literals-per-clause); this engine
// favors a simple, obviously-correct implementation over a
// two-watched-literal scheme (see doc.go).
func (s *CDCL) propagate() *clause {
	if s.unsat {
		return &clause{}
	}
	for {
		changed := false
		for _, c := range s.clauses {
			satisfied := false
			var unassignedLit Lit
			unassignedCount := 0
			for _, l := range c.lits {
				switch s.valueOfLit(l) {
				case gate.LTrue:
					satisfied = true
				case gate.LFalse:
					// falsified literal, contributes nothing
				default:
					unassignedCount++
					unassignedLit = l
				}
				if satisfied {
					break
				}
			}
			if satisfied {
				continue
			}
			if unassignedCount == 0 {
				return c
			}
			if unassignedCount == 1 {
				s.assignLit(unassignedLit, c)
				changed = true
			}
		}
		if !changed {
			return nil
		}
	}
}

// analyze performs first-UIP conflict analysis starting from the
// conflicting clause confl, returning a learnt clause (whose first
// literal is the asserting UIP literal's complement) and the level to
// backjump to.
func (s *CDCL) analyze(confl *clause) ([]Lit, int) {
	seen := make(map[Var]bool)
	counter := 0
	var p Lit
	reasonClause := confl
	learnt := []Lit{0} // placeholder for the asserting literal
	idx := len(s.trail) - 1

	for {
		for _, q := range reasonClause.lits {
			v := q.Var()
			if p != 0 && v == p.Var() {
				continue
			}
			if seen[v] || s.level[v] == 0 {
				continue
			}
			seen[v] = true
			s.activity[v]++
			if s.level[v] >= s.decisionLevel() {
				counter++
			} else {
				learnt = append(learnt, q)
			}
		}
		for !seen[s.trail[idx].Var()] {
			idx--
		}
		p = s.trail[idx]
		seen[p.Var()] = false
		counter--
		idx--
		if counter == 0 {
			break
		}
		reasonClause = s.reason[p.Var()]
	}
	learnt[0] = p.Not()

	backLevel := 0
	for _, q := range learnt[1:] {
		if s.level[q.Var()] > backLevel {
			backLevel = s.level[q.Var()]
		}
	}

	return learnt, backLevel
}

// finalConflict walks the trail backward from seed's variables through
// each implied literal's reason clause and returns every assumption
// decision it reaches.
func (s *CDCL) finalConflict(seed []Lit, assumpSet map[Lit]bool) []Lit {
	seen := make(map[Var]bool, len(seed))
	for _, q := range seed {
		seen[q.Var()] = true
	}
	var out []Lit
	for i := len(s.trail) - 1; i >= 0; i-- {
		l := s.trail[i]
		if !seen[l.Var()] {
			continue
		}
		if r := s.reason[l.Var()]; r != nil {
			for _, q := range r.lits {
				seen[q.Var()] = true
			}
		} else if assumpSet[l] {
			out = append(out, l)
		}
	}
	return out
}

func (s *CDCL) pickBranchVar() (Var, bool) {
	best := Var(0)
	bestAct := -1.0
	for v := 1; v <= s.numVars(); v++ {
		if s.assign[v] != undef {
			continue
		}
		if s.activity[v] > bestAct {
			bestAct = s.activity[v]
			best = Var(v)
		}
	}
	return best, best != 0
}

// Solve implements Solver. The trail is reset at the start of every
// call; the permanent+learnt clause database persists across calls
// until Clear is called.
func (s *CDCL) Solve(assumps []Lit, budget *Budget) (Status, error) {
	s.backtrackTo(0)
	s.conflictLits = nil
	s.model = nil

	if s.unsat {
		return StatusUNSAT, nil
	}

	assumpSet := make(map[Lit]bool, len(assumps))
	for _, a := range assumps {
		assumpSet[a] = true
	}

	for _, a := range assumps {
		if budget != nil && budget.ShouldStop != nil && budget.ShouldStop() {
			return StatusUnknown, ErrAborted
		}
		switch s.valueOfLit(a) {
		case gate.LTrue:
			continue
		case gate.LFalse:
			s.conflictLits = append(s.finalConflict([]Lit{a}, assumpSet), a)
			return StatusUNSAT, nil
		}
		s.newDecisionLevel()
		s.assignLit(a, nil)
		if confl := s.propagate(); confl != nil {
			s.conflictLits = s.finalConflict(confl.lits, assumpSet)
			return StatusUNSAT, nil
		}
	}

	assumpLevel := s.decisionLevel()
	conflicts := 0
	for {
		if budget != nil && budget.ShouldStop != nil && budget.ShouldStop() {
			return StatusUnknown, ErrAborted
		}
		confl := s.propagate()
		if confl != nil {
			conflicts++
			if budget != nil && budget.MaxConflicts > 0 && conflicts > budget.MaxConflicts {
				return StatusUnknown, nil
			}
			if s.decisionLevel() == 0 {
				s.unsat = true
				return StatusUNSAT, nil
			}
			if s.decisionLevel() <= assumpLevel {
				s.conflictLits = s.finalConflict(confl.lits, assumpSet)
				return StatusUNSAT, nil
			}
			learnt, backLevel := s.analyze(confl)
			if backLevel < assumpLevel {
				backLevel = assumpLevel // keep every assumption assigned
			}
			s.backtrackTo(backLevel)
			learntClause := &clause{lits: learnt, learnt: true}
			s.clauses = append(s.clauses, learntClause)
			s.assignLit(learnt[0], learntClause)
			continue
		}

		v, ok := s.pickBranchVar()
		if !ok {
			s.snapshotModel()
			return StatusSAT, nil
		}
		s.newDecisionLevel()
		s.assignLit(NewLit(v, false), nil)
	}
}

func (s *CDCL) snapshotModel() {
	s.model = make(map[Var]gate.Lbool, s.numVars())
	for v := 1; v <= s.numVars(); v++ {
		s.model[Var(v)] = s.valueOfVar(Var(v))
	}
}

// Value implements Solver.
func (s *CDCL) Value(v Var) (gate.Lbool, error) {
	if s.model == nil {
		return gate.LUndef, ErrNoModel
	}
	return s.model[v], nil
}

// Model implements Solver.
func (s *CDCL) Model() (map[Var]gate.Lbool, error) {
	if s.model == nil {
		return nil, ErrNoModel
	}
	out := make(map[Var]gate.Lbool, len(s.model))
	for k, v := range s.model {
		out[k] = v
	}
	return out, nil
}

// Conflict implements Solver.
func (s *CDCL) Conflict() ([]Lit, error) {
	if s.conflictLits == nil {
		return nil, ErrNoConflict
	}
	out := make([]Lit, len(s.conflictLits))
	copy(out, s.conflictLits)
	return out, nil
}

// NewActLit implements Solver: allocates a fresh variable intended to
// gate a group of clauses (see package trace).
func (s *CDCL) NewActLit() Lit { return NewLit(s.AddVar(), false) }

// BumpActivity implements Solver.
func (s *CDCL) BumpActivity(l Lit, delta float64) {
	v := l.Var()
	if int(v) <= s.numVars() {
		s.activity[v] += delta
	}
}

// Clear implements Solver: discards all clauses and variables.
func (s *CDCL) Clear() {
	*s = CDCL{
		assign:   []assignState{undef},
		level:    []int{0},
		reason:   []*clause{nil},
		activity: []float64{0},
	}
}
