package clausify

import "errors"

var (
	// ErrNilNetlist indicates a Clausifier was built with a nil netlist.
	ErrNilNetlist = errors.New("clausify: nil netlist")

	// ErrNilSolver indicates a Clausifier was built with a nil solver.
	ErrNilSolver = errors.New("clausify: nil solver")

	// ErrStaleGeneration indicates the underlying netlist mutated (its
	// Generation advanced) since this Clausifier was built; its cached
	// literal maps are no longer trustworthy and it must be rebuilt.
	ErrStaleGeneration = errors.New("clausify: netlist generation changed, clausifier is stale")

	// ErrUnsupportedGateType indicates Clausify encountered a gate type
	// it does not know how to translate (e.g. GateNone).
	ErrUnsupportedGateType = errors.New("clausify: unsupported gate type")

	// ErrAborted indicates a resource callback refused further work
	// mid-clausification; the partial state is consistent but the
	// caller must treat the query as unknown.
	ErrAborted = errors.New("clausify: aborted by resource callback")
)
