package cube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hwmodelcheck/pdrcore/cube"
	"github.com/hwmodelcheck/pdrcore/gate"
)

func mkRefs(n *gate.Netlist, count int) []gate.Ref {
	out := make([]gate.Ref, count)
	for i := range out {
		out[i], _ = n.Add(gate.GateFlop)
	}
	return out
}

func TestNew_SortsAndDedups(t *testing.T) {
	n := gate.NewNetlist()
	f := mkRefs(n, 3)

	c := cube.New(f[2], f[0], f[1], f[0])
	assert.Equal(t, 3, c.Size())
	assert.True(t, c.At(0).ID() <= c.At(1).ID())
	assert.True(t, c.At(1).ID() <= c.At(2).ID())
}

func TestSubsumes(t *testing.T) {
	n := gate.NewNetlist()
	f := mkRefs(n, 3)

	small := cube.New(f[0])
	big := cube.New(f[0], f[1], f[2])
	assert.True(t, cube.Subsumes(small, big))
	assert.False(t, cube.Subsumes(big, small))
}

func TestSubsumes_DisjointLiterals(t *testing.T) {
	n := gate.NewNetlist()
	f := mkRefs(n, 2)

	a := cube.New(f[0])
	b := cube.New(f[1])
	assert.False(t, cube.Subsumes(a, b))
}

func TestWithout(t *testing.T) {
	n := gate.NewNetlist()
	f := mkRefs(n, 2)
	c := cube.New(f[0], f[1])

	reduced := c.Without(f[0])
	assert.Equal(t, 1, reduced.Size())
	assert.Equal(t, f[1], reduced.At(0))

	unchanged := c.Without(gate.NullRef)
	assert.True(t, unchanged.Equal(c))
}

func TestTCube_Validity(t *testing.T) {
	assert.False(t, cube.NullTCube.Valid())

	n := gate.NewNetlist()
	f := mkRefs(n, 1)
	tc := cube.At(cube.New(f[0]), 3)
	assert.True(t, tc.Valid())
	assert.Equal(t, 3, tc.Frame)
}
