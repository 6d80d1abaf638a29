// Package tsim implements ternary (three-valued) simulation over a
// gate.Netlist: propagating True/False/X (gate.LUndef) through the
// combinational part of the design to evaluate any wire given partial
// source assignments.
//
// A Simulator holds one time-step's worth of source values (PIs and
// flops/delays treated as sources) plus the combinational values
// derived from them. Advance turns a simulated step's computed
// next-state values into the seed for the following step, so a
// caller builds a depth-indexed value table by repeatedly calling
// Propagate then Advance -- this is how a concrete counterexample is
// proven real, and how cube generalization checks that excluding a
// flop from a state cube (setting it to X) still leaves the bad
// output determined.
package tsim
