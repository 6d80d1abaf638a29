package pdr

import (
	"errors"
	"math"

	"github.com/hwmodelcheck/pdrcore/clausify"
	"github.com/hwmodelcheck/pdrcore/cube"
	"github.com/hwmodelcheck/pdrcore/gate"
	"github.com/hwmodelcheck/pdrcore/satsolver"
	"github.com/hwmodelcheck/pdrcore/trace"
)

// Engine drives the extend/block/propagate loop (see doc.go) over a
// single prepared netlist. One Engine runs one property to
// conclusion; build a fresh one to check another.
type Engine struct {
	n      *gate.Netlist
	params Params
	rep    *report

	solver satsolver.Solver
	clz    *clausify.Clausifier

	siSolver satsolver.Solver
	siClz    *clausify.Clausifier

	tr *trace.Trace
	q  *cube.PoblQueue

	// piVals records, for a Pobl created by drainQueue's SAT branch (or
	// by Run's own initial bad-reaching obligation), the primary-input
	// assignment that witnessed the one-step transition from that
	// obligation's state into its Parent's. Walking a frame-0 Pobl's
	// Parent chain and collecting piVals along the way reconstructs a
	// counterexample's input sequence (see cex.go).
	piVals map[*cube.Pobl]map[int32]gate.Lbool

	activity map[gate.Ref]float64
	prioNext uint64

	solveCount int
	restartLim int

	bugFreeDepth int
	semanticRuns int
}

// New builds an Engine over n, which must already have been run
// through gate.Prepare. It wires a fresh reachability solver and a
// fresh initial-state solver, asserts F[0] into both, builds the
// transition relation once, and seeds an empty frame trace.
func New(n *gate.Netlist, opts ...Option) (*Engine, error) {
	if n == nil {
		return nil, ErrNilNetlist
	}
	if n.BadGate() == 0 {
		return nil, ErrNoBadGate
	}

	params := defaultParams()
	for _, opt := range opts {
		opt(&params)
	}

	e := &Engine{
		n:            n,
		params:       params,
		rep:          newReport(params),
		piVals:       make(map[*cube.Pobl]map[int32]gate.Lbool),
		activity:     make(map[gate.Ref]float64),
		prioNext:     math.MaxUint64 / 2,
		restartLim:   params.RestartLim,
		bugFreeDepth: -1,
	}

	e.solver = satsolver.NewCDCL()
	clz, err := clausify.New(n, e.solver, clausify.WithAbortCallback(e.shouldStop))
	if err != nil {
		return nil, err
	}
	e.clz = clz
	if err := buildTransition(n, e.clz, e.solver); err != nil {
		return nil, err
	}

	tr, err := trace.New(n, e.solver, e.clz,
		trace.WithRedundantCubes(params.RedundCubes),
		trace.WithLogger(params.Logger))
	if err != nil {
		return nil, err
	}
	e.tr = tr

	if err := assertInitialState(n, e.clz, e.solver, e.tr.ActLit(0)); err != nil {
		return nil, err
	}

	e.siSolver = satsolver.NewCDCL()
	siClz, err := clausify.New(n, e.siSolver)
	if err != nil {
		return nil, err
	}
	e.siClz = siClz
	if err := buildInitialState(n, e.siClz, e.siSolver); err != nil {
		return nil, err
	}

	e.q = cube.NewPoblQueue(params.SortPoblBySize)

	return e, nil
}

func (e *Engine) shouldStop() bool {
	return e.params.ShouldStop != nil && e.params.ShouldStop()
}

func (e *Engine) budget() *satsolver.Budget {
	return &satsolver.Budget{ShouldStop: e.shouldStop}
}

func (e *Engine) nextPriority() uint64 {
	e.prioNext--
	return e.prioNext
}

// Run executes the main loop to a verdict: initial check, then
// repeatedly extend the frame trace, block every bad-reaching
// predecessor within the new frame, and try to converge by
// propagation. A stop request seen inside a SAT query or a
// clausification also ends the run with an Undetermined result.
func (e *Engine) Run() (res *Result, err error) {
	defer func() {
		if errors.Is(err, satsolver.ErrAborted) || errors.Is(err, clausify.ErrAborted) {
			res, err = &Result{Verdict: Undetermined, BugFreeDepth: e.bugFreeDepth}, nil
			e.rep.result(res)
		}
	}()
	initBad, err := e.checkInitialBad()
	if err != nil {
		return nil, err
	}
	if initBad {
		cex, err := e.extractInitCex()
		if err != nil {
			return nil, err
		}
		res := &Result{Verdict: Failed, Counterexample: cex, BugFreeDepth: -1}
		e.rep.result(res)
		return res, nil
	}

	for {
		if e.shouldStop() {
			res := &Result{Verdict: Undetermined, BugFreeDepth: e.bugFreeDepth}
			e.rep.result(res)
			return res, nil
		}
		if err := e.maybeRestart(); err != nil {
			return nil, err
		}

		depth := e.tr.NewFrame()
		e.rep.frame(depth, e.bugFreeDepth)

		for {
			ok, model, err := e.blockBad(depth)
			if err != nil {
				if errors.Is(err, ErrSolverUnknown) {
					res := &Result{Verdict: Undetermined, BugFreeDepth: e.bugFreeDepth}
					e.rep.result(res)
					return res, nil
				}
				return nil, err
			}
			if ok {
				break
			}

			t, err := e.weaken(model, e.badTargets())
			if err != nil {
				return nil, err
			}
			root := cube.NewPobl(cube.At(t, depth), e.nextPriority(), nil)
			e.piVals[root] = e.piProjection(model)
			e.q.Insert(root)

			cex, err := e.drainQueue()
			if err != nil {
				if errors.Is(err, ErrSolverUnknown) {
					res := &Result{Verdict: Undetermined, BugFreeDepth: e.bugFreeDepth}
					e.rep.result(res)
					return res, nil
				}
				return nil, err
			}
			if cex != nil {
				res := &Result{Verdict: Failed, Counterexample: cex, BugFreeDepth: e.bugFreeDepth}
				e.rep.result(res)
				return res, nil
			}
		}
		e.bugFreeDepth = depth

		if err := e.runSemanticCOI(); err != nil {
			return nil, err
		}

		if !e.params.SkipProp {
			invFrame, converged, err := e.propagate()
			if err != nil {
				return nil, err
			}
			if converged {
				inv, err := e.buildInvariant(invFrame)
				if err != nil {
					return nil, err
				}
				res := &Result{Verdict: Proved, Invariant: inv, BugFreeDepth: e.bugFreeDepth}
				e.rep.result(res)
				return res, nil
			}
		}
	}
}

// maybeRestart clears the reachability solver and rebuilds it from
// scratch once Params.RestartLim solveRelative-class queries have run
// since the last restart, scaling the threshold by RestartMult
// afterward. The frame trace's stored cubes are untouched.
func (e *Engine) maybeRestart() error {
	if e.params.RestartLim <= 0 || e.solveCount < e.restartLim {
		return nil
	}

	e.solver.Clear()
	clz, err := clausify.New(e.n, e.solver, clausify.WithAbortCallback(e.shouldStop))
	if err != nil {
		return err
	}
	if err := buildTransition(e.n, clz, e.solver); err != nil {
		return err
	}
	if err := e.tr.Rebuild(e.solver, clz); err != nil {
		return err
	}
	if err := assertInitialState(e.n, clz, e.solver, e.tr.ActLit(0)); err != nil {
		return err
	}
	e.clz = clz
	e.solveCount = 0
	e.restartLim = int(math.Ceil(float64(e.restartLim) * e.params.RestartMult))
	e.rep.restart(e.restartLim)
	return nil
}

// solve wraps e.solver.Solve, counting queries toward the restart
// policy.
func (e *Engine) solve(assumps []satsolver.Lit, budget *satsolver.Budget) (satsolver.Status, error) {
	e.solveCount++
	return e.solver.Solve(assumps, budget)
}
