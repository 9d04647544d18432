package ode

import (
	"errors"
	"fmt"
)

// Domain errors for integration.
var (
	// ErrDiverged indicates the state picked up a NaN or Inf component.
	ErrDiverged = errors.New("ode: state diverged (NaN or Inf detected)")

	// ErrStepTooSmall indicates the adaptive timestep fell below the minimum.
	ErrStepTooSmall = errors.New("ode: adaptive timestep below minimum")

	// ErrTooManySteps indicates the solver exceeded its step budget.
	ErrTooManySteps = errors.New("ode: step limit exceeded")

	// ErrBadSchedule indicates a time schedule that is empty or not
	// strictly monotonic.
	ErrBadSchedule = errors.New("ode: time schedule must be strictly monotonic")

	// ErrDimension indicates a state vector that is not planar.
	ErrDimension = errors.New("ode: state must have exactly 2 components")

	// ErrIncomplete indicates the solver produced fewer samples than the
	// schedule requested.
	ErrIncomplete = errors.New("ode: solution has fewer samples than requested")

	// ErrUnknownParam indicates a parameter name the system does not have.
	ErrUnknownParam = errors.New("ode: unknown system parameter")
)

// SolveError wraps an error with the time and sample index where
// integration stopped.
type SolveError struct {
	Time    float64
	Sample  int
	Wrapped error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("sample %d (t=%.4f): %v", e.Sample, e.Time, e.Wrapped)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
