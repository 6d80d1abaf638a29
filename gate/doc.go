// Package gate defines the netlist substrate the PDR engine reasons
// about: a typed, acyclic-after-flops directed graph of gates, with
// dense-array storage indexed by a gate's internal identity.
//
// A Netlist owns every Gate it contains. Gates are created with Add,
// referenced by signed Ref values (a gate identity plus an inversion
// bit), and consumed by the clausifier, ternary simulator and PDR
// engine in topological order. Once Prepare has run, the netlist
// carries exactly one distinguished bad gate. Prepare does not assign
// initial values: every flop keeps the Init it was given, which may be
// LUndef.
//
// A gate.Netlist is single-owner and carries no internal lock: the
// PDR engine that drives it is single-threaded and cooperative. The
// netlist is built once by a parser/preparation pass and is read-only
// for the remainder of a run, except for the rare deletion of
// now-unreachable gates, which the caller must treat as invalidating
// any cached clausification (see package clausify).
package gate
