// errors.go — sentinel errors for the gate package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition
//     site; call sites attach context with fmt.Errorf("...: %w", Err).

package gate

import "errors"

var (
	// ErrNilNetlist indicates an operation was attempted on a nil *Netlist.
	ErrNilNetlist = errors.New("gate: netlist is nil")

	// ErrGateNotFound indicates a Ref or gate id does not name a live gate.
	ErrGateNotFound = errors.New("gate: gate not found")

	// ErrBadArity indicates Add was called with the wrong number of
	// fanins for the requested GateType.
	ErrBadArity = errors.New("gate: wrong fanin arity for gate type")

	// ErrNullFanin indicates a required fanin slot was the null Ref.
	ErrNullFanin = errors.New("gate: fanin must not be null")

	// ErrDuplicateNumber indicates a PI/Flop external number collides
	// with one already assigned to a gate of the same type.
	ErrDuplicateNumber = errors.New("gate: duplicate external number")

	// ErrConstDeleted indicates an attempt to delete or retype the
	// constant-true gate (identity 1), which must never be removed.
	ErrConstDeleted = errors.New("gate: constant-true gate cannot be deleted")

	// ErrCombinationalCycle indicates the netlist has a combinational
	// cycle even after treating flops/PIs as sources -- a malformed
	// input, not an engine bug.
	ErrCombinationalCycle = errors.New("gate: combinational cycle detected")

	// ErrNoBadGate indicates Prepare (or an operation requiring it)
	// was invoked before exactly one bad gate was designated.
	ErrNoBadGate = errors.New("gate: no distinguished bad gate")

	// ErrMultipleBadGates indicates more than one GateBad is present
	// when Prepare expects exactly one.
	ErrMultipleBadGates = errors.New("gate: more than one bad gate")

	// ErrUnsupportedGateType indicates clausification or simulation
	// reached a gate type it does not know how to interpret (e.g. a
	// generic k-input LUT, which this engine does not support).
	ErrUnsupportedGateType = errors.New("gate: unsupported gate type")

	// ErrUndefinedInit indicates a flop's initial value is l_Undef
	// where the caller required a concrete boolean (e.g. building the
	// initial-state predicate for the initial-state SAT solver).
	ErrUndefinedInit = errors.New("gate: flop initial value is undefined")
)
