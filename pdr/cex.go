package pdr

import (
	"fmt"

	"github.com/hwmodelcheck/pdrcore/clausify"
	"github.com/hwmodelcheck/pdrcore/cube"
	"github.com/hwmodelcheck/pdrcore/gate"
	"github.com/hwmodelcheck/pdrcore/satsolver"
	"github.com/hwmodelcheck/pdrcore/tsim"
)

// piProjection reads, out of a raw solver model, the value driving
// every primary input, keyed by its external Number. Unassigned or
// never-clausified inputs (dead code, or inputs the query never
// touched) are omitted.
func (e *Engine) piProjection(model map[satsolver.Var]gate.Lbool) map[int32]gate.Lbool {
	out := make(map[int32]gate.Lbool)
	for _, r := range e.n.PIs() {
		lit, ok := e.clz.Lookup(r, 0, clausify.Current)
		if !ok {
			continue
		}
		v := litValue(model, lit)
		if v == gate.LUndef {
			continue
		}
		out[e.n.Gate(r).Number()] = v
	}
	return out
}

// buildInitFlops reads, out of a raw solver model produced by clz,
// the value of every flop (not delay -- delays are encoding
// artifacts, never user-facing state) at (frame=0, Current), keyed by
// external Number. A flop the query left unconstrained defaults to
// false, matching Result's documented counterexample convention.
func (e *Engine) buildInitFlops(model map[satsolver.Var]gate.Lbool, clz *clausify.Clausifier) map[int32]gate.Lbool {
	out := make(map[int32]gate.Lbool)
	for _, r := range e.n.Flops() {
		v := gate.LUndef
		if lit, ok := clz.Lookup(r, 0, clausify.Current); ok {
			v = litValue(model, lit)
		}
		if v == gate.LUndef {
			v = gate.LFalse
		}
		out[e.n.Gate(r).Number()] = v
	}
	return out
}

// extractInitCex builds the counterexample for the degenerate case
// where bad is already reachable one step out of some initial state
// (Run's up-front checkInitialBad). e.solver's last model -- still
// live from that query -- supplies both the initial flop values and
// the single transition's primary-input assignment.
func (e *Engine) extractInitCex() (*Counterexample, error) {
	model, err := e.solver.Model()
	if err != nil {
		return nil, err
	}
	initFlops := e.buildInitFlops(model, e.clz)
	pv := e.piProjection(model)
	return &Counterexample{InitFlops: initFlops, Steps: []map[int32]gate.Lbool{pv}}, nil
}

// extractCex walks p's Parent chain from the frame-0 obligation that
// was just confirmed to intersect an initial state up to the root
// obligation planted by Run, collecting each ancestor's recorded
// piVals entry along the way. Because Parent always points toward the
// *next* frame up, this walk naturally yields Steps in increasing
// time order with no reversal needed.
func (e *Engine) extractCex(p *cube.Pobl) (*Counterexample, error) {
	ok, err := e.isInitial(p.Cube)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvariantViolation
	}
	model, err := e.siSolver.Model()
	if err != nil {
		return nil, err
	}
	initFlops := e.buildInitFlops(model, e.siClz)

	var steps []map[int32]gate.Lbool
	for cur := p; cur != nil; cur = cur.Parent {
		pv, ok := e.piVals[cur]
		if !ok {
			return nil, fmt.Errorf("pdr: extractCex: missing pi assignment for obligation at frame %d", cur.Frame)
		}
		steps = append(steps, pv)
	}
	return &Counterexample{InitFlops: initFlops, Steps: steps}, nil
}

// verifyCex replays cex against the netlist with a fresh ternary
// simulator: seed the initial flop/delay values, drive each step's
// primary inputs, and confirm bad reads true at exactly the final
// step and not before is not checked (PDR's own soundness argument
// covers that); only the final reading is load-bearing for a real
// counterexample.
func (e *Engine) verifyCex(cex *Counterexample) error {
	sim, err := tsim.NewSimulator(e.n)
	if err != nil {
		return err
	}
	for _, r := range e.n.Flops() {
		v := cex.InitFlops[e.n.Gate(r).Number()]
		if err := sim.SetSource(r, v); err != nil {
			return err
		}
	}
	for _, r := range e.n.Delays() {
		v := e.n.Gate(r).Init()
		if v == gate.LUndef {
			v = gate.LFalse
		}
		if err := sim.SetSource(r, v); err != nil {
			return err
		}
	}

	for _, step := range cex.Steps {
		for _, r := range e.n.PIs() {
			v, ok := step[e.n.Gate(r).Number()]
			if !ok {
				v = gate.LFalse
			}
			if err := sim.SetSource(r, v); err != nil {
				return err
			}
		}
		if err := sim.Propagate(); err != nil {
			return err
		}
		next, err := sim.Advance()
		if err != nil {
			return err
		}
		sim = next
	}

	if sim.Value(e.n.Bad()) != gate.LTrue {
		return ErrCexRejected
	}
	return nil
}
