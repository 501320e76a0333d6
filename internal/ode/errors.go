package ode

import (
	"errors"
	"fmt"
)

var (
	// ErrNonFinite indicates a derivative evaluation produced NaN or Inf.
	ErrNonFinite = errors.New("ode: derivative evaluation is not finite")

	// ErrDimension indicates a derivative or state whose length does not
	// match the system dimension. Always a programming error; never padded
	// or truncated.
	ErrDimension = errors.New("ode: dimension mismatch between state and system")

	// ErrStepTooSmall indicates the adaptive step size collapsed below the
	// resolvable minimum.
	ErrStepTooSmall = errors.New("ode: adaptive step size below minimum")
)

// DomainError signals a physically or numerically meaningless parameter,
// caught at construction time or when validating an instance.
type DomainError struct {
	System string
	Param  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	if e.System != "" {
		return fmt.Sprintf("%s: parameter %s=%g %s", e.System, e.Param, e.Value, e.Reason)
	}
	return fmt.Sprintf("parameter %s=%g %s", e.Param, e.Value, e.Reason)
}

// StepError carries the time and state at which an integration step failed.
// Integration aborts on the first StepError; these failures are
// deterministic, so retrying is meaningless.
type StepError struct {
	Time  float64
	State State
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("t=%.6g state=%v: %v", e.Time, []float64(e.State), e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
