// Package gate: mutation methods on Netlist -- creation, input
// rewiring, retyping, deletion. Each follows the same shape: validate,
// then mutate, then update secondary indices. A Netlist is
// single-owner, with no internal locking (see doc.go).
package gate

import "fmt"

// Add creates a new gate of type typ with the given fanins and
// returns its non-inverted Ref.
//
// Returns ErrNilNetlist if n is nil, ErrBadArity if len(ins) does not
// match typ's arity, ErrNullFanin if any required fanin is null.
// GateFlop and GateDelay may also be created with no fanin at all and
// wired later with SetInput. GatePI and GateFlop may additionally be created with a non-negative
// external Number via AddNumbered; Add always assigns number -1.
//
// Complexity: O(1) amortized.
func (n *Netlist) Add(typ GateType, ins ...Ref) (Ref, error) {
	return n.addNumbered(typ, -1, ins...)
}

// AddNumbered is like Add but assigns an external file-boundary
// Number (used by GatePI and GateFlop). Returns ErrDuplicateNumber if
// number is already used by another gate of the same type.
func (n *Netlist) AddNumbered(typ GateType, number int32, ins ...Ref) (Ref, error) {
	if number < 0 {
		return NullRef, fmt.Errorf("gate: AddNumbered: negative number: %w", ErrBadArity)
	}
	return n.addNumbered(typ, number, ins...)
}

func (n *Netlist) addNumbered(typ GateType, number int32, ins ...Ref) (Ref, error) {
	if n == nil {
		return NullRef, ErrNilNetlist
	}
	if typ == GateConst || typ == GateNone {
		return NullRef, fmt.Errorf("gate: Add: cannot construct %s directly: %w", typ, ErrBadArity)
	}
	arity := typ.arity()
	if len(ins) != arity && !((typ == GateFlop || typ == GateDelay) && len(ins) == 0) {
		return NullRef, fmt.Errorf("gate: Add(%s): want %d fanins, got %d: %w", typ, arity, len(ins), ErrBadArity)
	}
	for i, r := range ins {
		if r.IsNull() {
			return NullRef, fmt.Errorf("gate: Add(%s): fanin %d: %w", typ, i, ErrNullFanin)
		}
		if !n.has(r.id) {
			return NullRef, fmt.Errorf("gate: Add(%s): fanin %d: %w", typ, i, ErrGateNotFound)
		}
	}
	if number >= 0 {
		if typ != GatePI && typ != GateFlop {
			return NullRef, fmt.Errorf("gate: Add(%s): numbered gates must be PI or Flop: %w", typ, ErrBadArity)
		}
		tbl := n.numberTable(typ)
		if _, dup := tbl[number]; dup {
			return NullRef, fmt.Errorf("gate: Add(%s) number %d: %w", typ, number, ErrDuplicateNumber)
		}
	}

	id := uint32(len(n.gates))
	g := Gate{id: id, typ: typ, number: number, init: LUndef}
	copy(g.fanin[:], ins)
	n.gates = append(n.gates, g)

	switch typ {
	case GatePI:
		n.pis = append(n.pis, id)
		if number >= 0 {
			n.numberedPI[number] = id
		}
	case GateFlop:
		n.flops = append(n.flops, id)
		if number >= 0 {
			n.numberedFlop[number] = id
		}
	case GateDelay:
		n.delays = append(n.delays, id)
	case GatePO:
		n.pos = append(n.pos, id)
	case GateBad:
		n.bads = append(n.bads, id)
	case GateConstraint:
		n.constraints = append(n.constraints, id)
	}
	n.generation++

	return Ref{id: id}, nil
}

func (n *Netlist) numberTable(typ GateType) map[int32]uint32 {
	if typ == GatePI {
		return n.numberedPI
	}
	return n.numberedFlop
}

func (n *Netlist) has(id uint32) bool {
	return id > 0 && int(id) < len(n.gates) && !n.gates[id].dead
}

// Gate returns a read-only pointer to the gate r refers to (ignoring
// its inversion bit). Returns nil if r is null or names a deleted or
// out-of-range gate.
func (n *Netlist) Gate(r Ref) *Gate {
	if n == nil || !n.has(r.id) {
		return nil
	}
	return &n.gates[r.id]
}

// SetInput rewires fanin slot i of the gate identified by ref to in.
// Returns ErrGateNotFound, ErrBadArity (slot out of range), or
// ErrNullFanin.
func (n *Netlist) SetInput(ref Ref, i int, in Ref) error {
	if n == nil {
		return ErrNilNetlist
	}
	if !n.has(ref.id) {
		return ErrGateNotFound
	}
	g := &n.gates[ref.id]
	if i < 0 || i >= g.typ.arity() {
		return fmt.Errorf("gate: SetInput: slot %d: %w", i, ErrBadArity)
	}
	if in.IsNull() {
		return ErrNullFanin
	}
	if !n.has(in.id) {
		return fmt.Errorf("gate: SetInput: new fanin: %w", ErrGateNotFound)
	}
	g.fanin[i] = in
	n.generation++

	return nil
}

// SetType changes the type tag of the gate identified by ref,
// provided the new type has the same arity as the number of
// currently-wired fanins beyond that arity is not checked here --
// callers retyping a gate are expected to also fix up its fanins.
// The constant-true gate (id 1) may never be retyped.
func (n *Netlist) SetType(ref Ref, typ GateType) error {
	if n == nil {
		return ErrNilNetlist
	}
	if !n.has(ref.id) {
		return ErrGateNotFound
	}
	if ref.id == 1 {
		return ErrConstDeleted
	}
	n.gates[ref.id].typ = typ
	n.generation++

	return nil
}

// SetInit sets the initial value of a GateFlop or GateDelay gate.
func (n *Netlist) SetInit(ref Ref, v Lbool) error {
	if n == nil {
		return ErrNilNetlist
	}
	g := n.Gate(ref)
	if g == nil {
		return ErrGateNotFound
	}
	if g.typ != GateFlop && g.typ != GateDelay {
		return fmt.Errorf("gate: SetInit: %s is not a register: %w", g.typ, ErrBadArity)
	}
	g.init = v

	return nil
}

// SetName attaches an optional debug name to a gate.
func (n *Netlist) SetName(ref Ref, name string) error {
	if n == nil {
		return ErrNilNetlist
	}
	g := n.Gate(ref)
	if g == nil {
		return ErrGateNotFound
	}
	g.name = name

	return nil
}

// Delete removes a gate, invalidating any cached clausification
// (callers must discard or rebuild their clausify.Clausifier).
// Returns ErrConstDeleted for gate id 1.
//
// Complexity: O(1) for the gate slot; O(k) to prune it from its type
// index slice, k = size of that slice.
func (n *Netlist) Delete(ref Ref) error {
	if n == nil {
		return ErrNilNetlist
	}
	if ref.id == 1 {
		return ErrConstDeleted
	}
	if !n.has(ref.id) {
		return ErrGateNotFound
	}
	g := &n.gates[ref.id]
	switch g.typ {
	case GatePI:
		n.pis = pruneID(n.pis, ref.id)
		if g.number >= 0 {
			delete(n.numberedPI, g.number)
		}
	case GateFlop:
		n.flops = pruneID(n.flops, ref.id)
		if g.number >= 0 {
			delete(n.numberedFlop, g.number)
		}
	case GateDelay:
		n.delays = pruneID(n.delays, ref.id)
	case GatePO:
		n.pos = pruneID(n.pos, ref.id)
	case GateBad:
		n.bads = pruneID(n.bads, ref.id)
	case GateConstraint:
		n.constraints = pruneID(n.constraints, ref.id)
	}
	g.dead = true
	g.fanin = [3]Ref{}
	n.generation++

	return nil
}

func pruneID(ids []uint32, target uint32) []uint32 {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

// NumGates returns the number of live (non-deleted, non-sentinel) gates.
func (n *Netlist) NumGates() int {
	count := 0
	for i := 1; i < len(n.gates); i++ {
		if !n.gates[i].dead {
			count++
		}
	}
	return count
}
