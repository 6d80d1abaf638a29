package pdr

import (
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// WithLogger installs a structured logger (see package trace's own
// WithLogger for the same nil-receiver-safe convention) that Run uses
// to emit one line per frame extended and one line for the final
// verdict. A nil logger, or Params.Quiet, is a silent no-op.
func WithLogger(log *logiface.Logger[*stumpy.Event]) Option {
	return func(p *Params) { p.Logger = log }
}

// WithVerbosity sets the progress logger's detail level: 0 emits only
// the per-frame summary and final verdict, >0 also logs each proof
// obligation's outcome (generalize/weaken/push).
func WithVerbosity(level int) Option { return func(p *Params) { p.Verbosity = level } }

// report wraps an Engine's configured logger so call sites don't need
// to repeat the Quiet/nil check; a nil *report (never constructed
// directly by a caller, only via newReport) behaves as a no-op.
type report struct {
	log     *logiface.Logger[*stumpy.Event]
	verbose bool
}

func newReport(p Params) *report {
	if p.Quiet {
		return &report{}
	}
	return &report{log: p.Logger, verbose: p.Verbosity > 0}
}

func (r *report) frame(depth, bugFreeDepth int) {
	if r == nil || r.log == nil {
		return
	}
	r.log.Info().Int(`depth`, depth).Int(`bug_free_depth`, bugFreeDepth).Log(`pdr: frame extended`)
}

func (r *report) obligation(frame, size int, outcome string) {
	if r == nil || r.log == nil || !r.verbose {
		return
	}
	r.log.Info().Int(`frame`, frame).Int(`size`, size).Str(`outcome`, outcome).Log(`pdr: obligation resolved`)
}

func (r *report) restart(lim int) {
	if r == nil || r.log == nil {
		return
	}
	r.log.Info().Int(`limit`, lim).Log(`pdr: restart`)
}

func (r *report) result(res *Result) {
	if r == nil || r.log == nil {
		return
	}
	r.log.Info().Str(`verdict`, res.Verdict.String()).Int(`bug_free_depth`, res.BugFreeDepth).Log(`pdr: result`)
}
