package pdr

import (
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Weaken selects how a SAT-derived predecessor state is reduced to a
// cube before it becomes a proof obligation or a newly learned
// blocking cube.
type Weaken int8

const (
	// WeakenNone keeps the full state: every flop's concrete value
	// becomes a cube literal. Weakest generalization, cheapest to
	// compute.
	WeakenNone Weaken = iota

	// WeakenJust makes one left-to-right pass over the state cube,
	// dropping each flop whose removal still lets a ternary-simulation
	// replay reach the target cube. It does not walk the AND/Mux cone
	// backward to find the structurally justifying flops.
	WeakenJust

	// WeakenSim runs one WeakenJust-style pass first when PreWeak is
	// set, then repeats such passes until one drops nothing, marking
	// each tried flop unconstrained (X) and keeping the drop as long
	// as the target cube still evaluates determinately true. The
	// default: the widest generalization of the three.
	WeakenSim
)

func (w Weaken) String() string {
	switch w {
	case WeakenJust:
		return "justify"
	case WeakenSim:
		return "sim"
	default:
		return "none"
	}
}

// SatSolverKind records which backend a caller intended to select.
// This module ships a single from-scratch CDCL implementation (see
// package satsolver's doc comment for why no third-party SAT library
// is linked), so every kind currently resolves to the same
// satsolver.CDCL; the field exists so Params keeps the same shape a
// multi-backend build would have. The engine does not read it and the
// report does not log it.
type SatSolverKind int8

const (
	SatSolverMsc SatSolverKind = iota
	SatSolverAbc
	SatSolverGlu
	SatSolverZz
	SatSolverMsr
	SatSolverGlr
)

func (k SatSolverKind) String() string {
	switch k {
	case SatSolverAbc:
		return "abc"
	case SatSolverGlu:
		return "glucose"
	case SatSolverZz:
		return "zz"
	case SatSolverMsr:
		return "minisat-restart"
	case SatSolverGlr:
		return "glucose-restart"
	default:
		return "minisat-core"
	}
}

// Params collects every tunable policy of the PDR engine. Zero value
// is not meaningful on its own: use defaultParams (applied by New
// before any Option runs).
type Params struct {
	// Seed is stored but not read: the engine makes no randomized
	// choice, and generalize's literal drop order is cube order or
	// activity order (see UseActivity).
	Seed uint64

	// MultiSat selects one solver instance per frame instead of one
	// shared, activation-literal-gated solver. This engine always uses
	// the shared solver; the field is accepted and ignored, and true
	// is not rejected.
	MultiSat bool

	// UseActivity orders generalize's literal-drop attempts by
	// ascending VSIDS activity (try dropping the least-active
	// literals first) instead of cube order.
	UseActivity bool

	// Weaken selects the predecessor-state reduction strategy.
	Weaken Weaken

	// PreWeak runs the justification pass before WeakenSim's
	// ternary-simulation pass, rather than simulating from the full
	// concrete state.
	PreWeak bool

	// SemanticCOI bounds how many times Engine.Run trims stored cubes
	// to bad's cone of influence: 0 disables it, >0 runs it once per
	// extend step, before that step's propagation sweep, for the first
	// that many steps. No pass runs after a propagation sweep.
	SemanticCOI int

	// SkipProp disables the propagation phase of the main loop,
	// trading early termination detection for raw throughput.
	SkipProp bool

	// RestartLim is the number of solveRelative SAT queries allowed
	// between restarts; 0 disables restarts. Doubles as the initial
	// threshold in the multiplicative restart schedule (see
	// RestartMult).
	RestartLim int

	// RestartMult scales RestartLim after each restart.
	RestartMult float64

	// Orbits bounds generalize's literal-drop attempts as a multiple
	// of the candidate cube's size (ceil(Orbits*size), minimum 1).
	Orbits float32

	// GenWithCex is stored but not read: generalize neither caches
	// nor reuses predecessor SAT models, and re-solves every
	// candidate reduction.
	GenWithCex bool

	// HQ runs a second, more expensive generalization pass (re-running
	// the drop loop from scratch against the final cube) to shrink
	// cubes generalize's single pass left larger than necessary.
	HQ bool

	// RedundCubes mirrors trace.WithRedundantCubes: also register a
	// newly learned cube against frame k-1's activation literal.
	RedundCubes bool

	// SortPoblBySize breaks same-frame proof-obligation ties by
	// ascending cube size before priority (see cube.PoblQueue).
	SortPoblBySize bool

	// PreCubes bounds how many proof obligations blockBad enqueues per
	// discovered bad-reaching predecessor before re-querying (always 1
	// in this engine; retained so the field's absence doesn't silently
	// fall back to a different default).
	PreCubes uint32

	// SimpInvar bounds how hard ExtractInvariant's caller should try
	// to shrink the proved invariant after the fact: 0 = none, 1 =
	// drop subsumed cubes (trace already does this continuously), 2 =
	// also run semantic COI once more at the end.
	SimpInvar int

	// SatSolver records the caller's backend choice (see SatSolverKind).
	SatSolver SatSolverKind

	// Quiet suppresses per-frame progress logging even if a logger is
	// installed.
	Quiet bool

	// ShouldStop, if non-nil, is polled between frames, inside every
	// SAT query and by the clausifier; a true return ends Run with an
	// Undetermined result.
	ShouldStop func() bool

	// Logger receives progress/result messages (see report.go). Nil
	// (the default) is a silent no-op.
	Logger *logiface.Logger[*stumpy.Event]

	// Verbosity controls how much report.go logs beyond the per-frame
	// summary and final verdict; see WithVerbosity.
	Verbosity int
}

func defaultParams() Params {
	return Params{
		UseActivity: true,
		Weaken:      WeakenSim,
		PreWeak:     true,
		RestartMult: 1.2,
		Orbits:      2,
		PreCubes:    1,
	}
}

// Option configures a new Engine's Params.
type Option func(*Params)

func WithSeed(seed uint64) Option             { return func(p *Params) { p.Seed = seed } }
func WithMultiSat(enabled bool) Option        { return func(p *Params) { p.MultiSat = enabled } }
func WithUseActivity(enabled bool) Option     { return func(p *Params) { p.UseActivity = enabled } }
func WithWeaken(w Weaken) Option              { return func(p *Params) { p.Weaken = w } }
func WithPreWeak(enabled bool) Option         { return func(p *Params) { p.PreWeak = enabled } }
func WithSemanticCOI(times int) Option        { return func(p *Params) { p.SemanticCOI = times } }
func WithSkipProp(enabled bool) Option        { return func(p *Params) { p.SkipProp = enabled } }
func WithGenWithCex(enabled bool) Option      { return func(p *Params) { p.GenWithCex = enabled } }
func WithHQ(enabled bool) Option              { return func(p *Params) { p.HQ = enabled } }
func WithRedundCubes(enabled bool) Option     { return func(p *Params) { p.RedundCubes = enabled } }
func WithSortPoblBySize(enabled bool) Option  { return func(p *Params) { p.SortPoblBySize = enabled } }
func WithPreCubes(n uint32) Option            { return func(p *Params) { p.PreCubes = n } }
func WithSimpInvar(level int) Option          { return func(p *Params) { p.SimpInvar = level } }
func WithSatSolverKind(k SatSolverKind) Option { return func(p *Params) { p.SatSolver = k } }
func WithQuiet(enabled bool) Option           { return func(p *Params) { p.Quiet = enabled } }
func WithShouldStop(fn func() bool) Option    { return func(p *Params) { p.ShouldStop = fn } }

// WithOrbits sets generalize's literal-drop attempt budget as a
// multiple of the candidate cube's size.
func WithOrbits(orbits float32) Option { return func(p *Params) { p.Orbits = orbits } }

// WithRestart enables the multiplicative restart policy: lim SAT
// queries between restarts, scaled by mult after each one. lim<=0
// disables restarts.
func WithRestart(lim int, mult float64) Option {
	return func(p *Params) {
		p.RestartLim = lim
		p.RestartMult = mult
	}
}
