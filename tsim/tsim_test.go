package tsim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwmodelcheck/pdrcore/gate"
	"github.com/hwmodelcheck/pdrcore/tsim"
)

func TestSimulator_AndGateTruthTable(t *testing.T) {
	n := gate.NewNetlist()
	a, err := n.Add(gate.GatePI)
	require.NoError(t, err)
	b, err := n.Add(gate.GatePI)
	require.NoError(t, err)
	w, err := n.Add(gate.GateAnd, a, b)
	require.NoError(t, err)

	for _, tc := range []struct {
		av, bv, want gate.Lbool
	}{
		{gate.LTrue, gate.LTrue, gate.LTrue},
		{gate.LTrue, gate.LFalse, gate.LFalse},
		{gate.LFalse, gate.LUndef, gate.LFalse},
		{gate.LTrue, gate.LUndef, gate.LUndef},
		{gate.LUndef, gate.LUndef, gate.LUndef},
	} {
		sim, err := tsim.NewSimulator(n)
		require.NoError(t, err)
		require.NoError(t, sim.SetSource(a, tc.av))
		require.NoError(t, sim.SetSource(b, tc.bv))
		require.NoError(t, sim.Propagate())
		assert.Equal(t, tc.want, sim.Value(w), "a=%v b=%v", tc.av, tc.bv)
	}
}

func TestSimulator_InvertedRefFlipsValue(t *testing.T) {
	n := gate.NewNetlist()
	a, err := n.Add(gate.GatePI)
	require.NoError(t, err)

	sim, err := tsim.NewSimulator(n)
	require.NoError(t, err)
	require.NoError(t, sim.SetSource(a, gate.LTrue))
	assert.Equal(t, gate.LFalse, sim.Value(a.Not()))

	require.NoError(t, sim.SetSource(a.Not(), gate.LTrue))
	assert.Equal(t, gate.LFalse, sim.Value(a))
}

func TestSimulator_MuxUnknownSelectResolvesWhenBranchesAgree(t *testing.T) {
	n := gate.NewNetlist()
	sel, err := n.Add(gate.GatePI)
	require.NoError(t, err)
	d1, err := n.Add(gate.GatePI)
	require.NoError(t, err)
	d0, err := n.Add(gate.GatePI)
	require.NoError(t, err)
	mux, err := n.Add(gate.GateMux, sel, d1, d0)
	require.NoError(t, err)

	sim, err := tsim.NewSimulator(n)
	require.NoError(t, err)
	require.NoError(t, sim.SetSource(d1, gate.LTrue))
	require.NoError(t, sim.SetSource(d0, gate.LTrue))
	// sel left unset (LUndef)
	require.NoError(t, sim.Propagate())
	assert.Equal(t, gate.LTrue, sim.Value(mux), "both branches agree, selector irrelevant")

	sim2, err := tsim.NewSimulator(n)
	require.NoError(t, err)
	require.NoError(t, sim2.SetSource(d1, gate.LTrue))
	require.NoError(t, sim2.SetSource(d0, gate.LFalse))
	require.NoError(t, sim2.Propagate())
	assert.Equal(t, gate.LUndef, sim2.Value(mux), "branches disagree, selector unknown")
}

func TestSimulator_SeedInitialStateAndAdvance(t *testing.T) {
	n := gate.NewNetlist()
	pi, err := n.Add(gate.GatePI)
	require.NoError(t, err)
	flop, err := n.AddNumbered(gate.GateFlop, 0, pi)
	require.NoError(t, err)
	require.NoError(t, n.SetInit(flop, gate.LFalse))

	sim, err := tsim.NewSimulator(n)
	require.NoError(t, err)
	require.NoError(t, sim.SeedInitialState())
	assert.Equal(t, gate.LFalse, sim.Value(flop))

	require.NoError(t, sim.SetSource(pi, gate.LTrue))
	require.NoError(t, sim.Propagate())

	next, err := sim.Advance()
	require.NoError(t, err)
	assert.Equal(t, gate.LTrue, next.Value(flop), "flop picks up its next-state function's value")
}

func TestSimulator_SnapshotRestore(t *testing.T) {
	n := gate.NewNetlist()
	a, err := n.Add(gate.GatePI)
	require.NoError(t, err)

	sim, err := tsim.NewSimulator(n)
	require.NoError(t, err)
	require.NoError(t, sim.SetSource(a, gate.LTrue))
	snap := sim.Snapshot()

	require.NoError(t, sim.SetSource(a, gate.LFalse))
	assert.Equal(t, gate.LFalse, sim.Value(a))

	sim.Restore(snap)
	assert.Equal(t, gate.LTrue, sim.Value(a))
}

func TestSimulator_SetSourceRejectsNonSource(t *testing.T) {
	n := gate.NewNetlist()
	a, err := n.Add(gate.GatePI)
	require.NoError(t, err)
	w, err := n.Add(gate.GateAnd, a, a)
	require.NoError(t, err)

	sim, err := tsim.NewSimulator(n)
	require.NoError(t, err)
	err = sim.SetSource(w, gate.LTrue)
	assert.ErrorIs(t, err, tsim.ErrNotASource)
}

func TestSimulator_StaleAfterNetlistMutation(t *testing.T) {
	n := gate.NewNetlist()
	a, err := n.Add(gate.GatePI)
	require.NoError(t, err)

	sim, err := tsim.NewSimulator(n)
	require.NoError(t, err)

	_, err = n.Add(gate.GatePI)
	require.NoError(t, err)

	err = sim.SetSource(a, gate.LTrue)
	assert.ErrorIs(t, err, tsim.ErrStaleGeneration)
}
