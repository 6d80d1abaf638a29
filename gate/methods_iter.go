// Package gate: iteration and typed-enumeration methods. TopoOrder is
// a standard three-color DFS, adapted so that flops/delays act as
// sources (breaking the latch self-loop) rather than being cycle
// participants -- see doc.go.
package gate

const (
	white = 0
	gray  = 1
	black = 2
)

// TopoOrder returns every non-source (GateAnd/GateMux/GatePO/GateBad/
// GateConstraint) gate id in a valid topological order: for every
// edge u→v (v's fanin is u), u precedes v. Flops and delays are
// sources for this purpose -- their own next-state-function fanin is
// ordered like any other combinational gate, but traversal never
// recurses *through* a flop/delay/PI/const reference.
//
// Returns ErrCombinationalCycle if a genuine combinational cycle
// exists after that source-treatment.
//
// Complexity: O(V + E).
func (n *Netlist) TopoOrder() ([]uint32, error) {
	if n == nil {
		return nil, ErrNilNetlist
	}
	state := make([]int8, len(n.gates))
	order := make([]uint32, 0, len(n.gates))

	var visit func(id uint32) error
	visit = func(id uint32) error {
		g := &n.gates[id]
		if g.typ.isSource() {
			return nil
		}
		switch state[id] {
		case black:
			return nil
		case gray:
			return ErrCombinationalCycle
		}
		state[id] = gray
		arity := g.typ.arity()
		for i := 0; i < arity; i++ {
			fi := g.fanin[i]
			if fi.IsNull() {
				continue
			}
			if err := visit(fi.id); err != nil {
				return err
			}
		}
		state[id] = black
		order = append(order, id)

		return nil
	}

	for id := uint32(1); id < uint32(len(n.gates)); id++ {
		if n.gates[id].dead {
			continue
		}
		if err := visit(id); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// PIs returns every live primary-input Ref, in creation order.
func (n *Netlist) PIs() []Ref { return refsOf(n.pis) }

// Flops returns every live flop Ref, in creation order.
func (n *Netlist) Flops() []Ref { return refsOf(n.flops) }

// Delays returns every live sequential-delay Ref, in creation order.
func (n *Netlist) Delays() []Ref { return refsOf(n.delays) }

// POs returns every live primary-output Ref, in creation order.
func (n *Netlist) POs() []Ref { return refsOf(n.pos) }

// Bads returns every live bad-signal Ref, in creation order.
func (n *Netlist) Bads() []Ref { return refsOf(n.bads) }

// Constraints returns every live safety-constraint Ref, in creation order.
func (n *Netlist) Constraints() []Ref { return refsOf(n.constraints) }

func refsOf(ids []uint32) []Ref {
	out := make([]Ref, len(ids))
	for i, id := range ids {
		out[i] = Ref{id: id}
	}
	return out
}

// ByNumber looks up the PI or Flop with the given external Number.
// Returns the zero Ref and false if none exists.
func (n *Netlist) ByNumber(typ GateType, number int32) (Ref, bool) {
	if n == nil {
		return NullRef, false
	}
	tbl := n.numberedPI
	if typ == GateFlop {
		tbl = n.numberedFlop
	}
	id, ok := tbl[number]
	if !ok {
		return NullRef, false
	}
	return Ref{id: id}, true
}

// FanoutCounts computes, for every live gate id, how many times it is
// referenced as a fanin elsewhere in the netlist (by AND/Mux/PO/Bad/
// Constraint gates, and by flop/delay next-state functions). The
// clausifier does not consult it: it materializes every gate it
// reaches.
//
// Complexity: O(V + E).
func (n *Netlist) FanoutCounts() map[uint32]int {
	counts := make(map[uint32]int, len(n.gates))
	for id := uint32(1); id < uint32(len(n.gates)); id++ {
		g := &n.gates[id]
		if g.dead {
			continue
		}
		arity := g.typ.arity()
		for i := 0; i < arity; i++ {
			fi := g.fanin[i]
			if fi.IsNull() {
				continue
			}
			counts[fi.id]++
		}
	}
	return counts
}
