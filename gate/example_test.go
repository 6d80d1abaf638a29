package gate_test

import (
	"fmt"

	"github.com/hwmodelcheck/pdrcore/gate"
)

// Example_counter builds a 2-bit, never-reset-to-zero-again counter
// netlist: x'=x∨i0, y'=y∨x, with bad=y -- the "trivial sat" shape
// used by the PDR engine's end-to-end tests.
func Example_counter() {
	n := gate.NewNetlist()

	i0, _ := n.AddNumbered(gate.GatePI, 0)
	x, _ := n.AddNumbered(gate.GateFlop, 0)
	y, _ := n.AddNumbered(gate.GateFlop, 1)

	xOrI0, _ := n.Add(gate.GateAnd, x.Not(), i0.Not())
	xNext, _ := n.Add(gate.GateAnd, xOrI0, n.ConstTrue())
	_ = n.SetInput(x, 0, xNext.Not())

	yOrX, _ := n.Add(gate.GateAnd, y.Not(), x.Not())
	_ = n.SetInput(y, 0, yOrX.Not())

	_ = n.SetInit(x, gate.LFalse)
	_ = n.SetInit(y, gate.LFalse)

	bad, err := gate.Prepare(n, y.Not())
	fmt.Println(err, n.Gate(bad).Type())
	// Output:
	// <nil> bad
}
