package clausify

import (
	"github.com/hwmodelcheck/pdrcore/gate"
	"github.com/hwmodelcheck/pdrcore/satsolver"
)

// Side tags which copy of a frame's variables a wire is clausified
// against. A relative-induction query needs both: s at the current
// side and the transition's next-state image at the next side.
type Side int8

const (
	// Current is the current-state copy of a frame's variables.
	Current Side = iota
	// Next is the next-state copy, used for flop inputs during a
	// one-step transition query.
	Next
)

func (s Side) String() string {
	if s == Next {
		return "next"
	}
	return "current"
}

// key identifies one memoised literal: a specific gate, at a specific
// unrolled frame, on a specific side, in its non-inverted polarity
// (the inversion bit is applied to the solver literal at lookup time,
// not baked into the key).
type key struct {
	frame int
	side  Side
	gate  uint32
}

// Clausifier lazily translates gate.Netlist wires into CNF inside a
// satsolver.Solver, memoising one solver literal per (frame, side,
// gate).
type Clausifier struct {
	n      *gate.Netlist
	solver satsolver.Solver
	gen    uint64 // netlist.Generation() snapshot at construction

	lits map[key]satsolver.Lit

	// abort, if non-nil, is polled before clausifying each gate; a
	// true return raises ErrAborted.
	abort func() bool
}

// Option configures a new Clausifier.
type Option func(*Clausifier)

// WithAbortCallback installs a resource callback polled before each
// gate is clausified (mirrors satsolver.Budget.ShouldStop).
func WithAbortCallback(fn func() bool) Option {
	return func(c *Clausifier) { c.abort = fn }
}
