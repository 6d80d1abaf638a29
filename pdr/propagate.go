package pdr

import (
	"github.com/hwmodelcheck/pdrcore/cube"
	"github.com/hwmodelcheck/pdrcore/satsolver"
)

// propagate sweeps frames 1..Depth()-1 forward: any cube still
// relatively inductive with respect to its own frame is promoted one
// frame up (trace.AddCube's subsumption sweep retires the lower-frame
// copy). It then reports whether two adjacent frames have become
// equal, the fixpoint signal that the property is proved at that
// frame.
func (e *Engine) propagate() (int, bool, error) {
	depth := e.tr.Depth()
	for k := 1; k < depth; k++ {
		cubes := append([]cube.Cube{}, e.tr.FrameCubes(k)...)
		for _, c := range cubes {
			status, z, err := e.solveRelative(cube.At(c, k), true)
			if err != nil {
				return 0, false, err
			}
			if status == satsolver.StatusUnknown {
				return 0, false, ErrSolverUnknown
			}
			if status != satsolver.StatusUNSAT {
				continue
			}
			// z is already guaranteed non-initial -- solveRelative
			// re-checks it and falls back to c's own literals
			// otherwise, so a cube already safely stored at frame k
			// is never replaced by one that intersects Init.
			pushed := c
			if !z.IsNull() && z.Size() > 0 && z.Size() < c.Size() {
				pushed = z
			}
			if err := e.tr.AddCube(cube.At(pushed, k+1), true); err != nil {
				return 0, false, err
			}
		}
	}
	if k, ok := e.tr.Converged(); ok {
		return k, true, nil
	}
	return 0, false, nil
}
