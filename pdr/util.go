package pdr

import (
	"github.com/hwmodelcheck/pdrcore/gate"
	"github.com/hwmodelcheck/pdrcore/satsolver"
)

// negLbool complements a definite Lbool (LTrue/LFalse); LUndef maps to
// itself, matching tsim's not3 convention.
func negLbool(v gate.Lbool) gate.Lbool {
	switch v {
	case gate.LTrue:
		return gate.LFalse
	case gate.LFalse:
		return gate.LTrue
	default:
		return gate.LUndef
	}
}

// litValue resolves l's value under model, a raw solver model keyed
// by Var (as returned by satsolver.Solver.Model). A variable absent
// from model (never allocated, or allocated but irrelevant to the
// query that produced the model) reads as LUndef.
func litValue(model map[satsolver.Var]gate.Lbool, l satsolver.Lit) gate.Lbool {
	v, ok := model[l.Var()]
	if !ok || v == gate.LUndef {
		return gate.LUndef
	}
	if l.Negated() {
		return negLbool(v)
	}
	return v
}
