package commands

import (
	"errors"
	"fmt"

	"customs/internal/core/domain/model/shipment"
	"customs/internal/core/ports"
)

// ErrPersistenceFailure classifies every error returned by a command whose
// state change could not be made durable. The caller may retry the command.
var ErrPersistenceFailure = errors.New("persistence failure")

// PersistenceError reports which persistence step failed.
type PersistenceError struct {
	Op  string
	Err error
}

func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrPersistenceFailure, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistenceFailure, e.Err}
}

// SideEffectStep names a post-commit step.
type SideEffectStep string

const (
	StepActivityLog  SideEffectStep = "activity_log"
	StepNotification SideEffectStep = "notification"
	StepSheetSync    SideEffectStep = "sheet_sync"
)

// SideEffectOutcome is the result of one post-commit step. A step either
// succeeded (Err nil, Skipped false), was skipped, or failed with Err.
type SideEffectOutcome struct {
	Step    SideEffectStep
	Skipped bool
	Err     error
}

func (o SideEffectOutcome) Failed() bool {
	return o.Err != nil
}

func succeeded(step SideEffectStep) SideEffectOutcome {
	return SideEffectOutcome{Step: step}
}

func skipped(step SideEffectStep) SideEffectOutcome {
	return SideEffectOutcome{Step: step, Skipped: true}
}

// outcomeOf classifies an adapter error. ports.ErrSideEffectSkipped is not a failure.
func outcomeOf(step SideEffectStep, err error) SideEffectOutcome {
	switch {
	case err == nil:
		return succeeded(step)
	case errors.Is(err, ports.ErrSideEffectSkipped):
		return skipped(step)
	default:
		return SideEffectOutcome{Step: step, Err: err}
	}
}

// Result is what a state-changing command returns once its write committed.
type Result struct {
	// Package is the committed state.
	Package shipment.Snapshot
	// SideEffects lists the post-commit steps in execution order.
	SideEffects []SideEffectOutcome
}

// Degraded reports whether any post-commit step failed. The state change
// itself is durable either way.
func (r Result) Degraded() bool {
	for _, o := range r.SideEffects {
		if o.Failed() {
			return true
		}
	}
	return false
}

// Outcome returns the outcome of step, if it ran.
func (r Result) Outcome(step SideEffectStep) (SideEffectOutcome, bool) {
	for _, o := range r.SideEffects {
		if o.Step == step {
			return o, true
		}
	}
	return SideEffectOutcome{}, false
}

// TransitionResult extends Result with what the status change did.
type TransitionResult struct {
	Result
	Transition shipment.TransitionOutcome
}
