package tsim

import (
	"fmt"

	"github.com/hwmodelcheck/pdrcore/gate"
)

// NewSimulator builds a Simulator over n, computing and caching its
// topological order. The constant-true gate is seeded to LTrue; every
// other source starts at LUndef (unknown) until SetSource is called.
func NewSimulator(n *gate.Netlist) (*Simulator, error) {
	if n == nil {
		return nil, ErrNilNetlist
	}
	order, err := n.TopoOrder()
	if err != nil {
		return nil, fmt.Errorf("tsim: NewSimulator: %w", err)
	}
	s := &Simulator{
		n:      n,
		order:  order,
		gen:    n.Generation(),
		values: make(map[uint32]gate.Lbool),
	}
	s.values[n.ConstTrue().ID()] = gate.LTrue
	return s, nil
}

func (s *Simulator) checkStale() error {
	if s.n.Generation() != s.gen {
		return ErrStaleGeneration
	}
	return nil
}

// Value returns r's current ternary value, applying r's inversion bit
// to the canonical value stored for its underlying gate. Unset
// sources and not-yet-propagated combinational gates read as LUndef.
func (s *Simulator) Value(r gate.Ref) gate.Lbool {
	v := s.values[r.ID()]
	if r.Inverted() {
		return not3(v)
	}
	return v
}

// SetSource assigns v to a source wire (PI, flop, delay, or the
// constant gate), applying r's inversion so that Value(r) == v
// afterward. Returns ErrNotASource for any other gate type.
func (s *Simulator) SetSource(r gate.Ref, v gate.Lbool) error {
	if err := s.checkStale(); err != nil {
		return err
	}
	g := s.n.Gate(r)
	if g == nil {
		return fmt.Errorf("tsim: SetSource: %w", gate.ErrGateNotFound)
	}
	switch g.Type() {
	case gate.GatePI, gate.GateFlop, gate.GateDelay, gate.GateConst:
	default:
		return ErrNotASource
	}
	canonical := v
	if r.Inverted() {
		canonical = not3(v)
	}
	s.values[r.ID()] = canonical
	return nil
}

// SeedInitialState sets every flop/delay with a concrete Init to its
// initial value; flops with LUndef Init are left at LUndef (free).
func (s *Simulator) SeedInitialState() error {
	for _, r := range s.n.Flops() {
		if g := s.n.Gate(r); g.Init() != gate.LUndef {
			if err := s.SetSource(r, g.Init()); err != nil {
				return err
			}
		}
	}
	for _, r := range s.n.Delays() {
		if g := s.n.Gate(r); g.Init() != gate.LUndef {
			if err := s.SetSource(r, g.Init()); err != nil {
				return err
			}
		}
	}
	return nil
}

// Propagate evaluates every combinational gate (AND, Mux, PO, Bad,
// Constraint) in topological order from the currently-set source
// values.
func (s *Simulator) Propagate() error {
	if err := s.checkStale(); err != nil {
		return err
	}
	for _, id := range s.order {
		g := s.n.Gate(gate.RefFromID(id))
		if g == nil {
			continue
		}
		switch g.Type() {
		case gate.GateAnd:
			a := s.Value(g.Fanin(0))
			b := s.Value(g.Fanin(1))
			s.values[id] = and3(a, b)
		case gate.GateMux:
			sel := s.Value(g.Fanin(0))
			d1 := s.Value(g.Fanin(1))
			d0 := s.Value(g.Fanin(2))
			s.values[id] = mux3(sel, d1, d0)
		case gate.GatePO, gate.GateBad, gate.GateConstraint:
			s.values[id] = s.Value(g.Fanin(0))
		}
	}
	return nil
}

// Snapshot captures the full current value table for later Restore.
func (s *Simulator) Snapshot() Snapshot {
	cp := make(map[uint32]gate.Lbool, len(s.values))
	for k, v := range s.values {
		cp[k] = v
	}
	return Snapshot{values: cp}
}

// Restore replaces the current value table with a previously captured
// Snapshot, undoing any SetSource/Propagate calls since it was taken.
func (s *Simulator) Restore(snap Snapshot) {
	s.values = snap.values
}

// Advance builds the Simulator for the following time step: every
// flop/delay's next-state function (its single fanin, already
// computed by the most recent Propagate) becomes the new step's
// source value for that same flop/delay. The constant gate carries
// over; every PI starts fresh at LUndef.
func (s *Simulator) Advance() (*Simulator, error) {
	if err := s.checkStale(); err != nil {
		return nil, err
	}
	next := &Simulator{
		n:      s.n,
		order:  s.order,
		gen:    s.gen,
		values: make(map[uint32]gate.Lbool),
	}
	next.values[s.n.ConstTrue().ID()] = gate.LTrue
	for _, r := range s.n.Flops() {
		g := s.n.Gate(r)
		next.values[r.ID()] = s.Value(g.Fanin(0))
	}
	for _, r := range s.n.Delays() {
		g := s.n.Gate(r)
		next.values[r.ID()] = s.Value(g.Fanin(0))
	}
	return next, nil
}
