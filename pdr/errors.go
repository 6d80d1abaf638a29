// errors.go — sentinel errors for the pdr package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition
//     site; call sites attach context with fmt.Errorf("...: %w", Err).

package pdr

import "errors"

var (
	// ErrNilNetlist indicates an Engine was built with a nil netlist.
	ErrNilNetlist = errors.New("pdr: nil netlist")

	// ErrNoBadGate indicates New was called on a netlist that has not
	// been run through gate.Prepare.
	ErrNoBadGate = errors.New("pdr: netlist has no bad gate, run gate.Prepare first")

	// ErrAborted indicates the run was cancelled by the configured
	// ShouldStop/effort callback before reaching a verdict.
	ErrAborted = errors.New("pdr: run aborted")

	// ErrSolverUnknown indicates a SAT query returned StatusUnknown
	// (a conflict or effort budget was exhausted) where the algorithm
	// requires a definite answer.
	ErrSolverUnknown = errors.New("pdr: solver returned an indeterminate result")

	// ErrInvariantViolation indicates a generalized cube intersects an
	// initial state right before it would have been stored -- a bug in
	// the engine, not a user error (see §7 "Internal invariant
	// violation").
	ErrInvariantViolation = errors.New("pdr: internal invariant violation: cube covers an initial state")

	// ErrCexRejected indicates a counterexample, once reconstructed,
	// failed ternary-simulation replay (bad did not evaluate true at
	// the final frame) -- fatal, since a real counterexample must
	// verify (see §7).
	ErrCexRejected = errors.New("pdr: counterexample rejected by simulator replay")
)
