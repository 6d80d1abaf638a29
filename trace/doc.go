// Package trace implements the PDR frame trace: the sequence
// F[0..depth] plus F[∞] of cube sets that record, at each depth,
// which states have been proven unreachable within that many steps.
//
// Each stored cube c in F[k] is backed by a permanent blocking clause
// in a shared satsolver.Solver, gated by that frame's activation
// literal (solver.NewActLit()) so a single solver instance can answer
// "is this cube blocked at frame d" queries against the union of
// every frame j >= d without re-clausifying anything: the caller
// assumes act[d..maxFrame] true and F[∞]'s clauses (ungated, always
// true) apply unconditionally. A cube is tracked in the highest
// frame it is known to hold at; IsBlocked and AddCube's subsumption
// sweep both exploit "stored at frame j covers every query at depth
// d <= j".
//
// Trace owns no transition-relation knowledge -- solveRelative,
// generalization and propagation live in package pdr, which is the
// only caller that knows how to clausify the two-frame transition
// query a blocking decision requires.
package trace
