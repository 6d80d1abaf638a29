// errors.go — sentinel errors for the trace package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition
//     site; call sites attach context with fmt.Errorf("...: %w", Err).

package trace

import "errors"

var (
	// ErrNilNetlist indicates a Trace was built with a nil netlist.
	ErrNilNetlist = errors.New("trace: nil netlist")

	// ErrNilSolver indicates a Trace was built with a nil solver.
	ErrNilSolver = errors.New("trace: nil solver")

	// ErrNilClausifier indicates a Trace was built with a nil clausifier.
	ErrNilClausifier = errors.New("trace: nil clausifier")

	// ErrFrameOutOfRange indicates a frame index outside [0, depth] was
	// requested where FrameInf was not also accepted.
	ErrFrameOutOfRange = errors.New("trace: frame index out of range")

	// ErrNonStateLiteral indicates a cube literal did not name a
	// flop/delay gate -- only state variables may appear in a stored
	// cube.
	ErrNonStateLiteral = errors.New("trace: cube literal does not name a state variable")

	// ErrInitialCubeAtNonzeroFrame indicates a cube inconsistent with
	// the invariant that no stored cube at frame k>0 may cover an
	// initial state was about to be recorded.
	ErrInitialCubeAtNonzeroFrame = errors.New("trace: stored cube covers an initial state")
)
