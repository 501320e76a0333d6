// Package sim turns a SystemInstance into a Trajectory. It owns the sample
// grid: steppers only ever advance between two adjacent sample times, so the
// recorded states land exactly on the requested grid with no interpolation.
package sim

import (
	"fmt"

	"github.com/san-kum/mechsim/internal/ode"
)

// Options tune how the solver crosses one inter-sample interval.
type Options struct {
	// Substeps fixes the number of equal subdivisions per interval for
	// non-adaptive steppers. Zero means 1.
	Substeps int

	// Tolerance enables adaptive stepping within each interval when the
	// stepper implements ode.AdaptiveStepper. Zero disables it.
	Tolerance float64
}

type Solver struct {
	stepper ode.Stepper
	opts    Options
}

func New(stepper ode.Stepper, opts Options) *Solver {
	if opts.Substeps < 1 {
		opts.Substeps = 1
	}
	return &Solver{stepper: stepper, opts: opts}
}

// Solve integrates the instance over its time span. The returned trajectory
// starts with the initial state exactly; any domain or dimension failure
// aborts immediately with the offending time and state attached.
func (s *Solver) Solve(inst ode.SystemInstance) (*ode.Trajectory, error) {
	if err := inst.Validate(); err != nil {
		return nil, s.named(inst, err)
	}

	times := inst.Span.Times()
	states := make([]ode.State, 0, len(times))
	states = append(states, inst.X0.Clone())

	x := inst.X0.Clone()
	for i := 1; i < len(times); i++ {
		var err error
		x, err = s.advance(inst.System, x, times[i-1], times[i])
		if err != nil {
			return nil, s.named(inst, err)
		}
		states = append(states, x.Clone())
	}

	return &ode.Trajectory{Times: times, States: states}, nil
}

func (s *Solver) advance(sys ode.System, x ode.State, t0, t1 float64) (ode.State, error) {
	if ad, ok := s.stepper.(ode.AdaptiveStepper); ok && s.opts.Tolerance > 0 {
		return s.advanceAdaptive(ad, sys, x, t0, t1)
	}

	n := s.opts.Substeps
	dt := (t1 - t0) / float64(n)
	var err error
	for i := 0; i < n; i++ {
		x, err = s.stepper.Step(sys, x, t0+float64(i)*dt, dt)
		if err != nil {
			return nil, err
		}
	}
	return x, nil
}

func (s *Solver) advanceAdaptive(ad ode.AdaptiveStepper, sys ode.System, x ode.State, t0, t1 float64) (ode.State, error) {
	// Gaps below minDt are float residue from t += dt, not real work.
	minDt := (t1 - t0) * 1e-10
	t := t0
	dt := t1 - t0
	for t1-t > minDt {
		if t+dt > t1 {
			dt = t1 - t
		}
		xNew, dtNext, err := ad.StepAdaptive(sys, x, t, dt, s.opts.Tolerance)
		if err != nil {
			return nil, err
		}
		x = xNew
		t += dt
		if dtNext < minDt {
			return nil, &ode.StepError{Time: t, State: x.Clone(), Err: ode.ErrStepTooSmall}
		}
		dt = dtNext
	}
	return x, nil
}

func (s *Solver) named(inst ode.SystemInstance, err error) error {
	if inst.Name == "" {
		return err
	}
	return fmt.Errorf("%s: %w", inst.Name, err)
}
