package pdr

import (
	"github.com/hwmodelcheck/pdrcore/clausify"
	"github.com/hwmodelcheck/pdrcore/cube"
	"github.com/hwmodelcheck/pdrcore/gate"
	"github.com/hwmodelcheck/pdrcore/satsolver"
)

// badTargets is the single-literal cube every proof obligation traces
// back to: the netlist's bad register reading true.
func (e *Engine) badTargets() cube.Cube {
	return cube.New(e.n.Bad())
}

// checkInitialBad asks whether bad can read true after a single
// transition out of the initial state, before any frame exists. Init
// is gated behind frame 0's activation literal (see
// assertInitialState), so this query assumes it explicitly.
func (e *Engine) checkInitialBad() (bool, error) {
	lit, err := e.clz.Clausify(e.n.Bad(), 0, clausify.Next)
	if err != nil {
		return false, err
	}
	status, err := e.solve([]satsolver.Lit{e.tr.ActLit(0), lit}, e.budget())
	if err != nil {
		return false, err
	}
	if status == satsolver.StatusUnknown {
		return false, ErrSolverUnknown
	}
	return status == satsolver.StatusSAT, nil
}

// blockBad checks whether bad is reachable in one step from F[depth],
// the frame that was just created. If UNSAT, depth's frontier already
// excludes every bad-reaching predecessor and the inner loop is done.
// Otherwise it returns the live SAT model for weaken to turn into a
// predecessor cube.
func (e *Engine) blockBad(depth int) (bool, map[satsolver.Var]gate.Lbool, error) {
	status, _, err := e.solveRelative(cube.At(e.badTargets(), depth), false)
	if err != nil {
		return false, nil, err
	}
	if status == satsolver.StatusUnknown {
		return false, nil, ErrSolverUnknown
	}
	if status == satsolver.StatusUNSAT {
		return true, nil, nil
	}
	model, err := e.solver.Model()
	if err != nil {
		return false, nil, err
	}
	return false, model, nil
}
