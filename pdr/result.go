package pdr

import "github.com/hwmodelcheck/pdrcore/gate"

// Verdict is the three-way outcome of a Run.
type Verdict int8

const (
	// Undetermined means Run stopped (aborted or ran out of budget)
	// before reaching Proved or Failed.
	Undetermined Verdict = iota

	// Proved means the property holds on every reachable state;
	// Result.Invariant carries the inductive strengthening found.
	Proved

	// Failed means a reachable state violates the property;
	// Result.Counterexample carries the witnessing trace.
	Failed
)

func (v Verdict) String() string {
	switch v {
	case Proved:
		return "proved"
	case Failed:
		return "failed"
	default:
		return "undetermined"
	}
}

// Counterexample is a concrete witness trace: an initial assignment
// to every flop, followed by one primary-input assignment per
// transition step, the last of which drives bad true. Delay registers
// (such as the one gate.Prepare inserts) are not listed.
type Counterexample struct {
	// InitFlops maps each flop's external Number to its value
	// at step 0. Unconstrained (Init==LUndef) state defaults to false,
	// per the spec's counterexample-extraction rule.
	InitFlops map[int32]gate.Lbool

	// Steps[i] maps each PI's external Number to its value driving
	// the transition from step i into step i+1. len(Steps) is the
	// counterexample's length: bad first reads true at step
	// len(Steps).
	Steps []map[int32]gate.Lbool
}

// Result is the outcome of a Run.
type Result struct {
	Verdict Verdict

	// Invariant is set iff Verdict == Proved: a pure combinational
	// netlist (see trace.ExtractInvariant) whose single PO is the
	// inductive strengthening of the property.
	Invariant *gate.Netlist

	// Counterexample is set iff Verdict == Failed.
	Counterexample *Counterexample

	// BugFreeDepth is the greatest k for which Run established bad is
	// unreachable within k steps -- -1 if even the initial states were
	// not checked (Failed at step 0).
	BugFreeDepth int
}
