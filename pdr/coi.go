package pdr

import (
	"github.com/hwmodelcheck/pdrcore/cube"
	"github.com/hwmodelcheck/pdrcore/satsolver"
)

// runSemanticCOI trims every stored cube down to the literals
// actually in bad's cone of influence, up to Params.SemanticCOI times
// over the engine's lifetime (0 disables it). Each trimmed cube is
// re-verified before being committed, so a COI pass can only shrink
// cubes, never weaken the proof.
func (e *Engine) runSemanticCOI() error {
	if e.params.SemanticCOI <= 0 || e.semanticRuns >= e.params.SemanticCOI {
		return nil
	}
	if err := e.semanticCOIPass(); err != nil {
		return err
	}
	e.semanticRuns++
	return nil
}

// semanticCOIPass re-verifies, for every stored cube, that its
// cone-of-influence trim is still relatively inductive at its own
// frame before letting trace commit the trim.
func (e *Engine) semanticCOIPass() error {
	verify := func(c cube.Cube, k int) (bool, error) {
		status, _, err := e.solveRelative(cube.At(c, k), true)
		if err != nil {
			return false, err
		}
		return status == satsolver.StatusUNSAT, nil
	}
	return e.tr.SemanticCOI(e.n.Bad(), verify)
}
