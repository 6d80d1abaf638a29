package pdr

import "github.com/hwmodelcheck/pdrcore/gate"

// buildInvariant extracts F[k] (k being the frame Converged found, or
// the fixpoint frame generally) as a standalone netlist. With
// Params.SimpInvar >= 2, an extra semantic cone-of-influence pass runs
// over the trace first, so the extracted invariant only names the
// flops bad actually depends on.
func (e *Engine) buildInvariant(k int) (*gate.Netlist, error) {
	if e.params.SimpInvar >= 2 {
		if err := e.semanticCOIPass(); err != nil {
			return nil, err
		}
	}
	return e.tr.ExtractInvariant(k)
}
