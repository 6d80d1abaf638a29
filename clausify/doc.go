// Package clausify turns a sub-DAG of a gate.Netlist into CNF inside
// a satsolver.Solver, lazily and incrementally.
//
// A Clausifier is keyed by (frame, Side, gate identity): the same
// wire clausified at two different unrolled frames, or on both the
// current-state and next-state side of a transition query, gets two
// independent solver variables. Once a (frame, Side, gate) triple has
// a memoised literal, Clausify reuses it rather than re-emitting
// Tseitin clauses -- clausification is monotone, matching the
// underlying Solver's own "clauses accumulate" contract.
package clausify
