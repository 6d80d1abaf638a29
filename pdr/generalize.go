package pdr

import (
	"math"
	"sort"

	"github.com/hwmodelcheck/pdrcore/clausify"
	"github.com/hwmodelcheck/pdrcore/cube"
	"github.com/hwmodelcheck/pdrcore/gate"
	"github.com/hwmodelcheck/pdrcore/satsolver"
)

// generalize shrinks a blocking cube c (already proven relatively
// inductive to F[k-1]) by repeatedly dropping literals and
// re-checking relative induction. Each pass tries every literal at
// most once and makes at most ceil(Params.Orbits * size) drop attempts
// in total (minimum 1). With Params.HQ set, a second independent pass
// is run over the first pass's result.
func (e *Engine) generalize(c cube.Cube, k int) (cube.Cube, error) {
	cur, err := e.generalizePass(c, k)
	if err != nil {
		return cube.Null, err
	}
	if e.params.HQ {
		cur, err = e.generalizePass(cur, k)
		if err != nil {
			return cube.Null, err
		}
	}
	e.bumpActivity(cur)
	return cur, nil
}

func (e *Engine) generalizePass(c cube.Cube, k int) (cube.Cube, error) {
	lits := append([]gate.Ref{}, c.Literals()...)
	if e.params.UseActivity {
		sort.Slice(lits, func(i, j int) bool {
			return e.activity[lits[i].PosRef()] < e.activity[lits[j].PosRef()]
		})
	}

	limit := int(math.Ceil(float64(e.params.Orbits) * float64(len(lits))))
	if limit < 1 {
		limit = 1
	}

	cur := c
	attempts := 0
	for _, r := range lits {
		if attempts >= limit || cur.Size() <= 1 {
			break
		}
		if !cur.Contains(r) {
			continue
		}
		attempts++

		reduced := cur.Without(r)
		initHit, err := e.isInitial(reduced)
		if err != nil {
			return cube.Null, err
		}
		if initHit {
			continue
		}

		status, z, err := e.solveRelative(cube.At(reduced, k-1), true)
		if err != nil {
			return cube.Null, err
		}
		if status == satsolver.StatusUnknown {
			return cube.Null, ErrSolverUnknown
		}
		if status != satsolver.StatusUNSAT {
			continue
		}
		// z is already guaranteed non-initial here -- solveRelative
		// re-verified it and falls back to reduced's own literals
		// otherwise (see its doc comment).
		if !z.IsNull() && z.Size() > 0 && z.Size() < cur.Size() {
			cur = z
		} else {
			cur = reduced
		}
	}
	return cur, nil
}

// bumpActivity records that every literal in c just took part in a
// learned blocking cube, nudging both the engine's own drop-order
// heuristic and the SAT solver's variable activity.
func (e *Engine) bumpActivity(c cube.Cube) {
	for i := 0; i < c.Size(); i++ {
		r := c.At(i)
		e.activity[r.PosRef()]++
		if lit, ok := e.clz.Lookup(r, 0, clausify.Current); ok {
			e.solver.BumpActivity(lit, 1)
		}
	}
}
