package gate

import "fmt"

// Lbool is a three-valued logic value: true, false, or undefined.
// It is used for flop initial values (a flop may reset to an unknown
// value) and, by package tsim, for ternary simulation results.
type Lbool int8

const (
	LUndef Lbool = iota // unknown / don't-care
	LFalse
	LTrue
)

// String renders an Lbool for debugging and log fields.
func (l Lbool) String() string {
	switch l {
	case LTrue:
		return "1"
	case LFalse:
		return "0"
	default:
		return "x"
	}
}

// GateType tags the role of a Gate. It is a sum type in spirit (see
// DESIGN.md / SPEC_FULL.md §9 "Sum-typed gates"): every Gate carries
// exactly one GateType and a fixed-arity fanin array sized for the
// richest case (GateMux, 3 inputs).
type GateType int8

const (
	// GateNone marks an unused/deleted slot; never a valid gate identity.
	GateNone GateType = iota

	// GateConst is the single constant-true gate, always identity 1.
	GateConst

	// GatePI is a primary input: a free boolean each frame, no fanins.
	GatePI

	// GateAnd is a two-input AND gate (the sole combinational primitive).
	GateAnd

	// GateFlop is a register: its current-frame value is a source
	// (like a PI) with an Init value; fanin[0] is its next-state
	// function, evaluated in the *next* frame, never the current one.
	GateFlop

	// GateDelay is a sequential-delay node: semantically identical to
	// GateFlop (a one-cycle register) but carries no external Number
	// and exists purely to break a combinational cycle at
	// preparation time -- e.g. the one-cycle delay register Prepare
	// inserts in front of the bad signal.
	GateDelay

	// GatePO is a named, single-fanin combinational output.
	GatePO

	// GateBad is the single distinguished safety-property gate: the
	// run fails if this gate's fanin ever evaluates true.
	GateBad

	// GateConstraint is a safety constraint (environment assumption):
	// conjoined into the transition relation as an always-true fact
	// when clausifying, and into the initial-state predicate.
	GateConstraint

	// GateMux is a 3-input multiplexer: fanin[0]=select,
	// fanin[1]=data-if-true, fanin[2]=data-if-false. LUTs of
	// arbitrary arity are explicitly unsupported (see
	// ErrUnsupportedGateType).
	GateMux
)

func (t GateType) String() string {
	switch t {
	case GateConst:
		return "const"
	case GatePI:
		return "pi"
	case GateAnd:
		return "and"
	case GateFlop:
		return "flop"
	case GateDelay:
		return "delay"
	case GatePO:
		return "po"
	case GateBad:
		return "bad"
	case GateConstraint:
		return "constraint"
	case GateMux:
		return "mux"
	default:
		return "none"
	}
}

// arity returns the number of meaningful fanin slots for t.
func (t GateType) arity() int {
	switch t {
	case GateConst, GatePI:
		return 0
	case GateAnd:
		return 2
	case GateFlop, GateDelay, GatePO, GateBad, GateConstraint:
		return 1
	case GateMux:
		return 3
	default:
		return -1
	}
}

// isSource reports whether gates of this type are evaluated as leaves
// during topological iteration of the combinational graph -- PIs and
// flops are sources; their own fanin (a flop's next-state function)
// belongs to the cone reachable *from* them, not a predecessor of
// them, which is what keeps a latch's self-loop from being a cycle.
func (t GateType) isSource() bool {
	return t == GateConst || t == GatePI || t == GateFlop || t == GateDelay
}

// Ref is a signed reference to a gate: a gate identity paired with a
// single inversion bit. The zero Ref is the distinguished null
// reference (IsNull reports true). Equality and hashing are on
// (id, inv) -- Ref is a plain comparable struct, so Go's built-in
// equality and use as a map key already implement this.
type Ref struct {
	id  uint32
	inv bool
}

// NullRef is the absent/unset reference.
var NullRef = Ref{}

// RefFromID rehydrates a non-inverted Ref from a raw gate identity,
// such as the ids TopoOrder or FanoutCounts return. Callers outside
// this package have no other way to construct a Ref directly from an
// id they already hold.
func RefFromID(id uint32) Ref { return Ref{id: id} }

// IsNull reports whether r is the distinguished absent reference.
func (r Ref) IsNull() bool { return r.id == 0 }

// Not returns the complement of r (same gate, inversion bit flipped).
func (r Ref) Not() Ref { return Ref{id: r.id, inv: !r.inv} }

// Inverted reports whether r carries the inversion bit.
func (r Ref) Inverted() bool { return r.inv }

// ID returns the stable internal gate identity r points to.
func (r Ref) ID() uint32 { return r.id }

// PosRef returns r with the inversion bit cleared -- useful as a
// canonical, hashable "which gate" key irrespective of polarity.
func (r Ref) PosRef() Ref { return Ref{id: r.id} }

func (r Ref) String() string {
	if r.IsNull() {
		return "<null>"
	}
	if r.inv {
		return fmt.Sprintf("!g%d", r.id)
	}
	return fmt.Sprintf("g%d", r.id)
}

// Gate is a single node: a type tag, up to three signed fanins, and
// an external Number for PIs/flops (file-boundary identity). Gate
// values are never copied out of a Netlist by callers needing
// identity -- callers hold a Ref and call Netlist.Gate(ref) for
// read-only inspection.
type Gate struct {
	id     uint32
	typ    GateType
	fanin  [3]Ref
	number int32 // PI/Flop external number; -1 if unset
	init   Lbool // GateFlop/GateDelay initial value
	name   string
	dead   bool // true once deleted; id slot retained to avoid renumbering
}

// ID returns g's stable internal identity.
func (g *Gate) ID() uint32 { return g.id }

// Type returns g's GateType.
func (g *Gate) Type() GateType { return g.typ }

// Number returns the external PI/Flop number, or -1 if unset.
func (g *Gate) Number() int32 { return g.number }

// Init returns the initial value for a GateFlop/GateDelay.
func (g *Gate) Init() Lbool { return g.init }

// Name returns an optional debug/display name (may be empty).
func (g *Gate) Name() string { return g.name }

// Fanin returns the i-th fanin slot (0-indexed), or NullRef if i is
// out of range for this gate's arity.
func (g *Gate) Fanin(i int) Ref {
	if i < 0 || i >= len(g.fanin) {
		return NullRef
	}
	return g.fanin[i]
}

// Arity returns how many fanin slots are meaningful for g's type.
func (g *Gate) Arity() int { return g.typ.arity() }

// Ref returns the non-inverted reference to g.
func (g *Gate) Ref() Ref { return Ref{id: g.id} }

// Netlist is an owning container of Gates: a dense array indexed by
// internal gate id (see SPEC_FULL.md §9, "Heterogeneous maps keyed by
// gate"), plus small typed-enumeration index slices.
//
// Identity 1 is always the constant-true gate and is never deleted
// (ErrConstDeleted). Gate 0 is never assigned (it is the null-ref
// sentinel id).
type Netlist struct {
	gates []Gate // gates[0] unused, gates[1] == const-true

	pis         []uint32
	flops       []uint32
	delays      []uint32
	pos         []uint32
	bads        []uint32
	constraints []uint32

	numberedPI   map[int32]uint32
	numberedFlop map[int32]uint32

	bad     Ref // the distinguished bad gate's fanin, after Prepare
	badGate uint32

	generation uint64 // bumped on any structural mutation; clausify checks this
}

// NewNetlist constructs an empty Netlist with its constant-true gate
// already present at identity 1.
//
// Complexity: O(1).
func NewNetlist() *Netlist {
	n := &Netlist{
		gates:        make([]Gate, 2, 64), // index 0 sentinel, index 1 const-true
		numberedPI:   make(map[int32]uint32),
		numberedFlop: make(map[int32]uint32),
	}
	n.gates[1] = Gate{id: 1, typ: GateConst, number: -1}
	return n
}

// Generation returns a counter bumped on every structural mutation
// (Add, SetInput, SetType, Delete). The clausifier uses this to
// detect that its memoised literal maps must be discarded.
func (n *Netlist) Generation() uint64 { return n.generation }

// ConstTrue returns the Ref to the netlist's constant-true gate.
func (n *Netlist) ConstTrue() Ref { return Ref{id: 1} }

// ConstFalse returns the inverted constant-true gate.
func (n *Netlist) ConstFalse() Ref { return Ref{id: 1, inv: true} }

// Bad returns the fanin of the distinguished bad gate, valid only
// after Prepare has run successfully.
func (n *Netlist) Bad() Ref { return n.bad }

// BadGate returns the gate id of the distinguished bad gate.
func (n *Netlist) BadGate() uint32 { return n.badGate }
