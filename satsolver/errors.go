package satsolver

import "errors"

var (
	// ErrNoModel indicates Model/Value was called without a preceding
	// Solve call that returned StatusSAT.
	ErrNoModel = errors.New("satsolver: no model available")

	// ErrNoConflict indicates Conflict was called without a preceding
	// Solve call that returned StatusUNSAT.
	ErrNoConflict = errors.New("satsolver: no conflict available")

	// ErrUnknownVar indicates a Lit referenced a Var never returned by
	// AddVar on this solver instance.
	ErrUnknownVar = errors.New("satsolver: unknown variable")

	// ErrAborted indicates the solver's resource callback requested a
	// stop mid-search; the caller must treat the query as unknown.
	ErrAborted = errors.New("satsolver: aborted by resource callback")
)
