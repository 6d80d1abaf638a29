// Package pdr implements the property-directed-reachability engine: it
// drives package trace's frame storage and package clausify's CNF
// translation through the extend/block/propagate loop that proves a
// safety property holds on every reachable state, or produces a
// counterexample trace showing it does not.
//
// The transition relation and the initial-state predicate are this
// package's responsibility, not trace's or clausify's: clausify only
// knows how to translate one gate at a time into CNF, and leaves a
// flop's next-state copy as a free variable. buildTransition (see
// transition.go) ties that free variable to the flop's next-state
// function with explicit equivalence clauses, once, at Engine
// construction, over a single shared solver -- there is no
// per-depth unrolling; a query at depth k assumes the frame trace's
// activation literals for frames k..maxFrame instead.
package pdr
