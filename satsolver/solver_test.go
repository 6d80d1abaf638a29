package satsolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwmodelcheck/pdrcore/gate"
	"github.com/hwmodelcheck/pdrcore/satsolver"
)

func lit(v satsolver.Var, neg bool) satsolver.Lit { return satsolver.NewLit(v, neg) }

func TestCDCL_UnitPropagationSatisfiesSimpleClause(t *testing.T) {
	s := satsolver.NewCDCL()
	a := s.AddVar()
	b := s.AddVar()
	require.NoError(t, s.AddClause(lit(a, false), lit(b, false)))
	require.NoError(t, s.AddClause(lit(a, true)))

	status, err := s.Solve(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, satsolver.StatusSAT, status)

	model, err := s.Model()
	require.NoError(t, err)
	assert.Equal(t, gate.LFalse, model[a])
	assert.Equal(t, gate.LTrue, model[b])
}

func TestCDCL_EmptyClauseIsUnsat(t *testing.T) {
	s := satsolver.NewCDCL()
	require.NoError(t, s.AddClause())

	status, err := s.Solve(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, satsolver.StatusUNSAT, status)
}

func TestCDCL_TautologyClauseIsDropped(t *testing.T) {
	s := satsolver.NewCDCL()
	a := s.AddVar()
	require.NoError(t, s.AddClause(lit(a, false), lit(a, true)))

	status, err := s.Solve(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, satsolver.StatusSAT, status)
}

func TestCDCL_ConflictingClausesAreUnsat(t *testing.T) {
	s := satsolver.NewCDCL()
	a := s.AddVar()
	require.NoError(t, s.AddClause(lit(a, false)))
	require.NoError(t, s.AddClause(lit(a, true)))

	status, err := s.Solve(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, satsolver.StatusUNSAT, status)
}

func TestCDCL_AssumptionConflictReportsMinimalCore(t *testing.T) {
	s := satsolver.NewCDCL()
	a := s.AddVar()
	b := s.AddVar()
	c := s.AddVar() // unrelated variable, should never show up in the conflict
	_ = c
	require.NoError(t, s.AddClause(lit(a, true), lit(b, true))) // ¬a ∨ ¬b : a and b can't both hold

	status, err := s.Solve([]satsolver.Lit{lit(a, false), lit(b, false)}, nil)
	require.NoError(t, err)
	require.Equal(t, satsolver.StatusUNSAT, status)

	conflict, err := s.Conflict()
	require.NoError(t, err)
	assert.ElementsMatch(t, []satsolver.Lit{lit(a, false), lit(b, false)}, conflict)
}

func TestCDCL_AssumptionsDoNotPersistAcrossSolves(t *testing.T) {
	s := satsolver.NewCDCL()
	a := s.AddVar()
	require.NoError(t, s.AddClause(lit(a, false), lit(a, true))) // tautology keeps a unconstrained

	status, err := s.Solve([]satsolver.Lit{lit(a, false)}, nil)
	require.NoError(t, err)
	require.Equal(t, satsolver.StatusSAT, status)

	status, err = s.Solve([]satsolver.Lit{lit(a, true)}, nil)
	require.NoError(t, err)
	assert.Equal(t, satsolver.StatusSAT, status)
}

func TestCDCL_ImplicationChainRefutesAssumptions(t *testing.T) {
	s := satsolver.NewCDCL()
	a := s.AddVar()
	b := s.AddVar()
	c := s.AddVar()
	require.NoError(t, s.AddClause(lit(a, true), lit(b, false)))  // ¬a ∨ b
	require.NoError(t, s.AddClause(lit(b, true), lit(c, false)))  // ¬b ∨ c
	require.NoError(t, s.AddClause(lit(a, false), lit(c, true)))  // a ∨ ¬c : forces a conflict region

	status, err := s.Solve([]satsolver.Lit{lit(a, false), lit(c, true)}, nil)
	require.NoError(t, err)
	assert.Equal(t, satsolver.StatusUNSAT, status)
}

func TestCDCL_ActivationLiteralGatesClause(t *testing.T) {
	s := satsolver.NewCDCL()
	a := s.AddVar()
	act := s.NewActLit()
	// ¬a ∨ ¬act : disabled unless act is assumed true
	require.NoError(t, s.AddClause(lit(a, true), act.Not()))

	status, err := s.Solve([]satsolver.Lit{lit(a, false)}, nil)
	require.NoError(t, err)
	assert.Equal(t, satsolver.StatusSAT, status, "clause disabled, a=true should be fine")

	status, err = s.Solve([]satsolver.Lit{lit(a, false), act}, nil)
	require.NoError(t, err)
	assert.Equal(t, satsolver.StatusUNSAT, status, "activating the clause forbids a=true")
}

func TestCDCL_ClearResetsSolverState(t *testing.T) {
	s := satsolver.NewCDCL()
	a := s.AddVar()
	require.NoError(t, s.AddClause(lit(a, false)))
	status, err := s.Solve(nil, nil)
	require.NoError(t, err)
	require.Equal(t, satsolver.StatusSAT, status)

	s.Clear()
	b := s.AddVar()
	require.NoError(t, s.AddClause(lit(b, true)))
	status, err = s.Solve(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, satsolver.StatusSAT, status)
}

func TestCDCL_BudgetAbortsViaShouldStop(t *testing.T) {
	s := satsolver.NewCDCL()
	a := s.AddVar()
	require.NoError(t, s.AddClause(lit(a, false), lit(a, true)))

	status, err := s.Solve(nil, &satsolver.Budget{ShouldStop: func() bool { return true }})
	require.ErrorIs(t, err, satsolver.ErrAborted)
	assert.Equal(t, satsolver.StatusUnknown, status)
}

func TestCDCL_ModelAndConflictErrorsWithoutPriorSolve(t *testing.T) {
	s := satsolver.NewCDCL()
	_, err := s.Model()
	assert.ErrorIs(t, err, satsolver.ErrNoModel)
	_, err = s.Conflict()
	assert.ErrorIs(t, err, satsolver.ErrNoConflict)
}
