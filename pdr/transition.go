package pdr

import (
	"fmt"

	"github.com/hwmodelcheck/pdrcore/clausify"
	"github.com/hwmodelcheck/pdrcore/gate"
	"github.com/hwmodelcheck/pdrcore/satsolver"
)

// buildTransition wires T(x,x') into clz's solver: for every flop and
// delay register, an equivalence between its next-side literal and
// its next-state function's current-side literal. clausify itself
// never does this (Clausify(flop, 0, Next) allocates a free variable
// regardless of the flop's fanin), so this is the one place the two
// solver copies of the transition are actually tied together.
//
// It also conjoins every GateConstraint's fanin as an always-true
// fact on both sides, so a relative-induction query automatically
// respects environment assumptions without either cube storage or
// clausify needing to know constraints exist.
func buildTransition(n *gate.Netlist, clz *clausify.Clausifier, solver satsolver.Solver) error {
	stateRefs := append(append([]gate.Ref{}, n.Flops()...), n.Delays()...)
	for _, r := range stateRefs {
		g := n.Gate(r)
		nextLit, err := clz.Clausify(r, 0, clausify.Next)
		if err != nil {
			return fmt.Errorf("pdr: buildTransition: flop next literal: %w", err)
		}
		curLit, err := clz.Clausify(g.Fanin(0), 0, clausify.Current)
		if err != nil {
			return fmt.Errorf("pdr: buildTransition: next-state function: %w", err)
		}
		if err := solver.AddClause(nextLit.Not(), curLit); err != nil {
			return err
		}
		if err := solver.AddClause(nextLit, curLit.Not()); err != nil {
			return err
		}
	}

	for _, r := range n.Constraints() {
		curLit, err := clz.Clausify(r, 0, clausify.Current)
		if err != nil {
			return fmt.Errorf("pdr: buildTransition: constraint current side: %w", err)
		}
		if err := solver.AddClause(curLit); err != nil {
			return err
		}
		nextLit, err := clz.Clausify(r, 0, clausify.Next)
		if err != nil {
			return fmt.Errorf("pdr: buildTransition: constraint next side: %w", err)
		}
		if err := solver.AddClause(nextLit); err != nil {
			return err
		}
	}

	return nil
}

// assertInitialState seeds F[0] in the main reachability solver: every
// concretely-initialized flop/delay is forced to its Init value,
// gated by guard (frame 0's activation literal). A query that brings
// frame 0 into scope -- checkInitialBad, or solveRelative bottoming
// out at from<=0 -- assumes guard and so sees Init; every other frame
// does not, leaving a flop free to take on whatever value is actually
// reachable at that point. Without this gate, Init would otherwise
// either be invisible everywhere (an arbitrary, unreachable state
// could masquerade as a frame-0 predecessor) or, if asserted
// unconditionally, would wrongly forbid a concretely-initialized flop
// from ever differing from Init at any later frame too.
func assertInitialState(n *gate.Netlist, clz *clausify.Clausifier, solver satsolver.Solver, guard satsolver.Lit) error {
	for _, r := range n.InitialStatePredicate() {
		lit, err := clz.Clausify(r, 0, clausify.Current)
		if err != nil {
			return fmt.Errorf("pdr: assertInitialState: %w", err)
		}
		if err := solver.AddClause(guard.Not(), lit); err != nil {
			return err
		}
	}
	return nil
}

// buildInitialState asserts the initial-state predicate (every
// concretely-initialized flop/delay pinned to its Init value) plus
// every constraint, permanently, into siClz's solver -- the dedicated
// solver Engine uses to test whether a candidate cube intersects Init.
func buildInitialState(n *gate.Netlist, siClz *clausify.Clausifier, siSolver satsolver.Solver) error {
	for _, r := range n.InitialStatePredicate() {
		lit, err := siClz.Clausify(r, 0, clausify.Current)
		if err != nil {
			return fmt.Errorf("pdr: buildInitialState: %w", err)
		}
		if err := siSolver.AddClause(lit); err != nil {
			return err
		}
	}
	for _, r := range n.Constraints() {
		lit, err := siClz.Clausify(r, 0, clausify.Current)
		if err != nil {
			return fmt.Errorf("pdr: buildInitialState: constraint: %w", err)
		}
		if err := siSolver.AddClause(lit); err != nil {
			return err
		}
	}
	return nil
}
