package gate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hwmodelcheck/pdrcore/gate"
)

func TestPrepare_InsertsDelayAndBad(t *testing.T) {
	n := gate.NewNetlist()
	pi, _ := n.Add(gate.GatePI)
	prop, err := n.Add(gate.GateAnd, pi, n.ConstTrue())
	assert.NoError(t, err)

	bad, err := gate.Prepare(n, prop)
	assert.NoError(t, err)
	assert.Len(t, n.Bads(), 1)
	assert.Equal(t, bad, n.Bads()[0])

	badGate := n.Gate(bad)
	assert.Equal(t, gate.GateBad, badGate.Type())

	delayRef := badGate.Fanin(0)
	delayGate := n.Gate(delayRef)
	assert.Equal(t, gate.GateDelay, delayGate.Type())
	assert.Equal(t, gate.LFalse, delayGate.Init())
}

func TestPrepare_RejectsSecondBad(t *testing.T) {
	n := gate.NewNetlist()
	pi, _ := n.Add(gate.GatePI)
	_, err := gate.Prepare(n, pi)
	assert.NoError(t, err)

	_, err = gate.Prepare(n, pi)
	assert.ErrorIs(t, err, gate.ErrMultipleBadGates)
}

func TestFoldConstants_SimplifiesAndWithTrue(t *testing.T) {
	n := gate.NewNetlist()
	pi, _ := n.Add(gate.GatePI)
	and, err := n.Add(gate.GateAnd, pi, n.ConstTrue())
	assert.NoError(t, err)
	po, err := n.Add(gate.GatePO, and)
	assert.NoError(t, err)

	assert.NoError(t, n.FoldConstants())
	assert.Equal(t, pi, n.Gate(po).Fanin(0))
}

func TestFoldConstants_AndWithItsComplementIsFalse(t *testing.T) {
	n := gate.NewNetlist()
	pi, _ := n.Add(gate.GatePI)
	and, err := n.Add(gate.GateAnd, pi, pi.Not())
	assert.NoError(t, err)
	po, err := n.Add(gate.GatePO, and)
	assert.NoError(t, err)

	assert.NoError(t, n.FoldConstants())
	assert.Equal(t, n.ConstFalse(), n.Gate(po).Fanin(0))
}

func TestInitialStatePredicate_SkipsUndef(t *testing.T) {
	n := gate.NewNetlist()
	f1, _ := n.Add(gate.GateFlop)
	f2, _ := n.Add(gate.GateFlop)
	assert.NoError(t, n.SetInit(f1, gate.LFalse))
	_ = f2 // f2 left as LUndef

	lits := n.InitialStatePredicate()
	assert.Len(t, lits, 1)
	assert.Equal(t, f1.Not(), lits[0])
}
