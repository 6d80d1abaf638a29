// Package satsolver defines the uniform adapter the PDR engine uses
// to talk to a CDCL SAT solver, and ships one dependency-free concrete
// implementation, CDCL.
//
// No third-party Go SAT solver library was available to depend on
// (see DESIGN.md for what was considered). The Solver interface here
// is a swap point for whatever backend a deployment prefers: CDCL is
// a from-scratch, correctness-focused stand-in for a production
// solver, reached through constructor-injected options with no
// solver-specific code outside this package.
package satsolver
