// Package gate: the preparation pass. Prepare turns a raw, parsed
// netlist (out of scope: the AIGER/BLIF parser that built it) into
// one the PDR engine can run on: it designates a single bad gate
// behind a one-cycle delay register (a property PO is prepared as
// bad=¬P with a one-cycle delay register), and folds constants
// introduced by that wiring or already present in the input.
package gate

import "fmt"

// Prepare designates property as the safety property to check (the
// netlist is correct iff property never evaluates false), inserting:
//
//  1. a GateDelay register, initialized false, whose next-state
//     function is ¬property;
//  2. a GateBad gate reading that register's current-state output.
//
// The one-cycle delay means bad is asserted in frame k+1 exactly when
// ¬property held in frame k -- this keeps the "bad" signal a register
// read, so the PDR engine's frame-k blocking query is uniform across
// k=0 and k>0 (the k=0 case is still handled separately, since the
// delay reads its init value, false, at frame 0).
//
// Prepare then runs constant folding and returns the new bad gate's
// Ref. It is an error to call Prepare on a netlist that already has a
// bad gate (ErrMultipleBadGates) or whose property Ref is null or
// absent (ErrGateNotFound).
//
// Complexity: O(V + E) for the topological pass constant folding requires.
func Prepare(n *Netlist, property Ref) (Ref, error) {
	if n == nil {
		return NullRef, ErrNilNetlist
	}
	if len(n.bads) != 0 {
		return NullRef, ErrMultipleBadGates
	}
	if property.IsNull() || !n.has(property.id) {
		return NullRef, fmt.Errorf("gate: Prepare: property: %w", ErrGateNotFound)
	}

	delayRef, err := n.Add(GateDelay, property.Not())
	if err != nil {
		return NullRef, fmt.Errorf("gate: Prepare: inserting delay register: %w", err)
	}
	if err := n.SetInit(delayRef, LFalse); err != nil {
		return NullRef, fmt.Errorf("gate: Prepare: initializing delay register: %w", err)
	}

	badRef, err := n.Add(GateBad, delayRef)
	if err != nil {
		return NullRef, fmt.Errorf("gate: Prepare: inserting bad gate: %w", err)
	}

	if err := n.FoldConstants(); err != nil {
		return NullRef, fmt.Errorf("gate: Prepare: constant folding: %w", err)
	}
	if _, err := n.TopoOrder(); err != nil {
		return NullRef, err
	}

	n.bad = n.gates[badRef.id].fanin[0]
	n.badGate = badRef.id

	return badRef, nil
}

// FoldConstants performs a single topological sweep of local constant
// propagation over AND gates: x∧true→x, x∧false→false, x∧x→x,
// x∧¬x→false. Redundant AND gates are replaced in place via a
// substitution map so every other live gate's fanins are rewired to
// point past them; the gates themselves are left as dead weight in
// the array (their ids may still be referenced by Ref values a caller
// is holding, which must keep resolving, so they are not deleted).
//
// Complexity: O(V + E).
func (n *Netlist) FoldConstants() error {
	if n == nil {
		return ErrNilNetlist
	}
	order, err := n.TopoOrder()
	if err != nil {
		return err
	}

	constTrue := Ref{id: 1}
	constFalse := Ref{id: 1, inv: true}

	subst := make(map[uint32]Ref)
	resolve := func(r Ref) Ref {
		if r.IsNull() {
			return r
		}
		if rep, ok := subst[r.id]; ok {
			if r.inv {
				return rep.Not()
			}
			return rep
		}
		return r
	}

	for _, id := range order {
		g := &n.gates[id]
		if g.typ != GateAnd {
			continue
		}
		a := resolve(g.fanin[0])
		b := resolve(g.fanin[1])
		g.fanin[0], g.fanin[1] = a, b

		switch {
		case a == constFalse || b == constFalse:
			subst[id] = constFalse
		case a == constTrue && b == constTrue:
			subst[id] = constTrue
		case a == constTrue:
			subst[id] = b
		case b == constTrue:
			subst[id] = a
		case a == b:
			subst[id] = a
		case a == b.Not():
			subst[id] = constFalse
		}
	}

	if len(subst) == 0 {
		return nil
	}

	for id := uint32(1); id < uint32(len(n.gates)); id++ {
		g := &n.gates[id]
		if g.dead {
			continue
		}
		arity := g.typ.arity()
		for i := 0; i < arity; i++ {
			if !g.fanin[i].IsNull() {
				g.fanin[i] = resolve(g.fanin[i])
			}
		}
	}
	n.generation++

	return nil
}

// InitialStatePredicate returns the conjunction of literals (one per
// flop/delay with a concrete Init, i.e. not LUndef) that defines the
// initial-state predicate F[0]. Flops whose Init is LUndef are
// unconstrained: the initial-state predicate places no
// literal on them, matching the counterexample extractor's rule of
// defaulting unconstrained flops to false outside of this predicate's
// own use in the initial-state SAT query.
func (n *Netlist) InitialStatePredicate() []Ref {
	var lits []Ref
	for _, id := range n.flops {
		g := &n.gates[id]
		switch g.init {
		case LTrue:
			lits = append(lits, Ref{id: id})
		case LFalse:
			lits = append(lits, Ref{id: id, inv: true})
		}
	}
	for _, id := range n.delays {
		g := &n.gates[id]
		switch g.init {
		case LTrue:
			lits = append(lits, Ref{id: id})
		case LFalse:
			lits = append(lits, Ref{id: id, inv: true})
		}
	}
	return lits
}
