package satsolver

import (
	"fmt"

	"github.com/hwmodelcheck/pdrcore/gate"
)

// Var is a solver-internal propositional variable, numbered from 1.
type Var int32

// Lit is a signed literal over a Var: positive for the variable
// itself, negative for its negation. The zero Lit is never valid (Var
// numbering starts at 1, matching DIMACS convention).
type Lit int32

// NewLit builds a Lit for v, negated if neg is true.
func NewLit(v Var, neg bool) Lit {
	if neg {
		return Lit(-v)
	}
	return Lit(v)
}

// Var returns the underlying variable of l.
func (l Lit) Var() Var {
	if l < 0 {
		return Var(-l)
	}
	return Var(l)
}

// Negated reports whether l is the negative literal of its variable.
func (l Lit) Negated() bool { return l < 0 }

// Not returns the complementary literal.
func (l Lit) Not() Lit { return -l }

func (l Lit) String() string {
	if l.Negated() {
		return fmt.Sprintf("-%d", l.Var())
	}
	return fmt.Sprintf("%d", l.Var())
}

// Status is the three-way result of a Solve call.
type Status int8

const (
	StatusUnknown Status = iota
	StatusSAT
	StatusUNSAT
)

func (s Status) String() string {
	switch s {
	case StatusSAT:
		return "sat"
	case StatusUNSAT:
		return "unsat"
	default:
		return "unknown"
	}
}

// Budget bounds a single Solve call's effort. A zero Budget means
// unbounded.
type Budget struct {
	// MaxConflicts caps the number of conflicts analyzed before
	// Solve gives up and returns StatusUnknown. 0 = unbounded.
	MaxConflicts int

	// ShouldStop, if non-nil, is polled between search steps; a true
	// return aborts the current Solve with StatusUnknown and
	// ErrAborted.
	ShouldStop func() bool
}

// Solver is the uniform CDCL adapter the rest of this module programs
// against. Multiple independent Solver instances may coexist -- the
// PDR engine keeps one for reachability queries and one for
// initial-state queries, and optionally one per frame under a
// multi-solver policy.
type Solver interface {
	// AddVar allocates a fresh variable.
	AddVar() Var

	// AddClause adds a clause (disjunction of lits) permanently: once
	// added, clauses are never retracted except by Clear.
	AddClause(lits ...Lit) error

	// Solve decides satisfiability of the permanent clause database
	// conjoined with assumps (assumps are NOT retained after the
	// call). budget may be nil for unbounded effort.
	Solve(assumps []Lit, budget *Budget) (Status, error)

	// Value returns v's value in the model of the most recent
	// StatusSAT Solve call. Returns gate.LUndef and ErrNoModel if no
	// such model exists.
	Value(v Var) (gate.Lbool, error)

	// Model returns every variable's value in the most recent
	// StatusSAT model.
	Model() (map[Var]gate.Lbool, error)

	// Conflict returns the subset of the most recent Solve call's
	// assumps that were actually used in deriving UNSAT -- the final
	// conflict a relative-induction query uses to shrink a candidate
	// cube. Returns ErrNoConflict if the last Solve did not return
	// StatusUNSAT.
	Conflict() ([]Lit, error)

	// NewActLit allocates a fresh activation literal: a variable
	// reserved to gate a group of clauses (e.g. "this clause only
	// holds if frame k's activation literal is assumed true").
	NewActLit() Lit

	// BumpActivity increases l's variable's activity score by delta.
	BumpActivity(l Lit, delta float64)

	// Clear discards all clauses and variables, resetting the solver
	// to empty. Used by the PDR engine's restart policy: the frame
	// trace survives a restart, only SAT state is lost.
	Clear()
}
