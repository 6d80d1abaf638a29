package tsim

import "errors"

var (
	// ErrNilNetlist indicates a Simulator was built with a nil netlist.
	ErrNilNetlist = errors.New("tsim: nil netlist")

	// ErrStaleGeneration indicates the underlying netlist mutated since
	// this Simulator's topological order was computed.
	ErrStaleGeneration = errors.New("tsim: netlist generation changed, simulator is stale")

	// ErrNotASource indicates SetSource was called on a Ref that is not
	// a PI, flop, delay, or the constant gate.
	ErrNotASource = errors.New("tsim: ref is not a source (PI/flop/delay/const)")
)
