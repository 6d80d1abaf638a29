package pdr

import (
	"github.com/hwmodelcheck/pdrcore/cube"
	"github.com/hwmodelcheck/pdrcore/satsolver"
)

// drainQueue runs the recursive-blocking loop over e.q until either
// every pending obligation has been blocked (queue empty, nil, nil
// returned) or a frame-0 obligation is found to intersect an initial
// state, in which case a verified Counterexample is returned.
func (e *Engine) drainQueue() (*Counterexample, error) {
	for !e.q.Empty() {
		p := e.q.PopMin()
		i := p.Frame
		s := p.Cube

		if i == 0 {
			initHit, err := e.isInitial(s)
			if err != nil {
				return nil, err
			}
			if initHit {
				cex, err := e.extractCex(p)
				if err != nil {
					return nil, err
				}
				if err := e.verifyCex(cex); err != nil {
					return nil, err
				}
				return cex, nil
			}
		}

		blocked, err := e.tr.IsBlocked(cube.At(s, i), e.budget())
		if err != nil {
			return nil, err
		}
		if blocked {
			if next := i + 1; next <= e.tr.Depth() {
				np := cube.NewPobl(cube.At(s, next), e.nextPriority(), p.Parent)
				if pv, ok := e.piVals[p]; ok {
					e.piVals[np] = pv
				}
				e.q.Insert(np)
			}
			continue
		}

		status, z, err := e.solveRelative(cube.At(s, i-1), true)
		if err != nil {
			return nil, err
		}
		if status == satsolver.StatusUnknown {
			return nil, ErrSolverUnknown
		}

		if status == satsolver.StatusUNSAT {
			// z is already guaranteed non-initial -- solveRelative
			// re-checks it and falls back to s's own literals
			// otherwise, so generalize never starts from a cube that
			// would forbid a reachable initial state.
			gc, err := e.generalize(z, i)
			if err != nil {
				return nil, err
			}
			if err := e.tr.AddCube(cube.At(gc, i), true); err != nil {
				return nil, err
			}
			e.rep.obligation(i, gc.Size(), "blocked")

			if i < e.tr.Depth() {
				np := cube.NewPobl(cube.At(s, i+1), e.nextPriority(), p.Parent)
				if pv, ok := e.piVals[p]; ok {
					e.piVals[np] = pv
				}
				e.q.Insert(np)
			}
			continue
		}

		// SAT: s has a predecessor at frame i-1; recurse on it and
		// retry s once that predecessor is itself blocked.
		model, err := e.solver.Model()
		if err != nil {
			return nil, err
		}
		t, err := e.weaken(model, s)
		if err != nil {
			return nil, err
		}
		child := cube.NewPobl(cube.At(t, i-1), e.nextPriority(), p)
		e.piVals[child] = e.piProjection(model)
		e.q.Insert(child)
		e.q.Insert(p)
		e.rep.obligation(i, s.Size(), "deferred")
	}
	return nil, nil
}
