package pdr

import (
	"github.com/hwmodelcheck/pdrcore/clausify"
	"github.com/hwmodelcheck/pdrcore/cube"
	"github.com/hwmodelcheck/pdrcore/gate"
	"github.com/hwmodelcheck/pdrcore/satsolver"
	"github.com/hwmodelcheck/pdrcore/tsim"
)

// fullStateCube reads every flop/delay's current-side value out of
// model, producing the (generally too strong) literal cube a
// SAT-found predecessor state corresponds to before any weakening.
func (e *Engine) fullStateCube(model map[satsolver.Var]gate.Lbool) cube.Cube {
	var lits []gate.Ref
	stateRefs := append(append([]gate.Ref{}, e.n.Flops()...), e.n.Delays()...)
	for _, r := range stateRefs {
		lit, ok := e.clz.Lookup(r, 0, clausify.Current)
		if !ok {
			continue
		}
		v := litValue(model, lit)
		switch v {
		case gate.LTrue:
			lits = append(lits, r)
		case gate.LFalse:
			lits = append(lits, r.Not())
		}
	}
	return cube.New(lits...)
}

// targetHolds simulates one transition step out of cand (a partial
// state assignment -- flops cand omits are left unconstrained) with
// cand's witnessing primary-input assignment (read out of model), and
// reports whether every literal of target reads determinately true
// in the resulting state.
func (e *Engine) targetHolds(model map[satsolver.Var]gate.Lbool, cand, target cube.Cube) (bool, error) {
	sim, err := tsim.NewSimulator(e.n)
	if err != nil {
		return false, err
	}
	for i := 0; i < cand.Size(); i++ {
		r := cand.At(i)
		v := gate.LTrue
		if r.Inverted() {
			v = gate.LFalse
		}
		if err := sim.SetSource(r.PosRef(), v); err != nil {
			return false, err
		}
	}
	for _, r := range e.n.PIs() {
		lit, ok := e.clz.Lookup(r, 0, clausify.Current)
		if !ok {
			continue
		}
		v := litValue(model, lit)
		if v == gate.LUndef {
			continue
		}
		if err := sim.SetSource(r, v); err != nil {
			return false, err
		}
	}
	if err := sim.Propagate(); err != nil {
		return false, err
	}
	next, err := sim.Advance()
	if err != nil {
		return false, err
	}
	for i := 0; i < target.Size(); i++ {
		if next.Value(target.At(i)) != gate.LTrue {
			return false, nil
		}
	}
	return true, nil
}

// weakenStep greedily drops literals from cur whose absence still
// lets targetHolds verify. toFixpoint=false tries every literal once
// (left to right); toFixpoint=true repeats full passes until one
// removes nothing.
func (e *Engine) weakenStep(model map[satsolver.Var]gate.Lbool, cur, target cube.Cube, toFixpoint bool) (cube.Cube, error) {
	for {
		removedAny := false
		for _, r := range cur.Literals() {
			if !cur.Contains(r) {
				continue
			}
			cand := cur.Without(r)
			if cand.Size() == cur.Size() {
				continue
			}
			ok, err := e.targetHolds(model, cand, target)
			if err != nil {
				return cube.Null, err
			}
			if ok {
				cur = cand
				removedAny = true
			}
		}
		if !toFixpoint || !removedAny {
			break
		}
	}
	return cur, nil
}

// weaken turns a raw SAT model witnessing a one-step path into target
// into a (generalized) predecessor cube, per Params.Weaken:
//
//   - WeakenNone: the full current-state assignment, unweakened.
//   - WeakenJust: one left-to-right drop pass, each drop verified by
//     ternary-simulation replay; no backward walk over the AND/Mux
//     cone is made.
//   - WeakenSim: PreWeak's single pass (if enabled) followed by a
//     fixpoint of drop passes, each verified by ternary-simulation
//     replay.
func (e *Engine) weaken(model map[satsolver.Var]gate.Lbool, target cube.Cube) (cube.Cube, error) {
	full := e.fullStateCube(model)
	switch e.params.Weaken {
	case WeakenNone:
		return full, nil
	case WeakenJust:
		return e.weakenStep(model, full, target, false)
	default: // WeakenSim
		cur := full
		if e.params.PreWeak {
			var err error
			cur, err = e.weakenStep(model, cur, target, false)
			if err != nil {
				return cube.Null, err
			}
		}
		return e.weakenStep(model, cur, target, true)
	}
}
