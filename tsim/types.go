package tsim

import "github.com/hwmodelcheck/pdrcore/gate"

// and3 is the Kleene three-valued AND: false dominates, then
// undefined, then true.
func and3(a, b gate.Lbool) gate.Lbool {
	if a == gate.LFalse || b == gate.LFalse {
		return gate.LFalse
	}
	if a == gate.LTrue && b == gate.LTrue {
		return gate.LTrue
	}
	return gate.LUndef
}

// not3 complements a ternary value; LUndef is its own complement.
func not3(a gate.Lbool) gate.Lbool {
	switch a {
	case gate.LTrue:
		return gate.LFalse
	case gate.LFalse:
		return gate.LTrue
	default:
		return gate.LUndef
	}
}

// mux3 is the ternary multiplexer: a known selector picks its branch
// outright; an unknown selector is only resolved if both branches
// agree on a known value.
func mux3(sel, d1, d0 gate.Lbool) gate.Lbool {
	switch sel {
	case gate.LTrue:
		return d1
	case gate.LFalse:
		return d0
	default:
		if d1 != gate.LUndef && d1 == d0 {
			return d1
		}
		return gate.LUndef
	}
}

// Snapshot is an opaque, restorable copy of a Simulator's current
// values, returned by Snapshot and consumed by Restore.
type Snapshot struct {
	values map[uint32]gate.Lbool
}

// Simulator evaluates one time-step of a gate.Netlist under ternary
// logic: sources (PI/flop/delay/const) carry explicit values, and
// Propagate derives every combinational gate's value from them in
// topological order.
type Simulator struct {
	n     *gate.Netlist
	order []uint32
	gen   uint64

	values map[uint32]gate.Lbool // keyed by canonical (non-inverted) gate id
}
