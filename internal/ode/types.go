package ode

import "math"

// DefaultSamples is the reference sampling resolution: trajectories are
// recorded at 1000 uniformly spaced times regardless of horizon length.
const DefaultSamples = 1000

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// System is the right-hand side of a first-order ODE system. Derive must be
// deterministic and side-effect free: steppers evaluate it at intermediate
// times and states of their own choosing.
type System interface {
	// Derive returns dX/dt at state x and time t. The returned vector must
	// have length Dim(); implementations must not retain or mutate x.
	Derive(x State, t float64) State
	Dim() int
}

// Hamiltonian is implemented by conservative systems that can report total
// mechanical energy at a state.
type Hamiltonian interface {
	Energy(x State) float64
}

// Stepper advances a state across one step of length dt.
type Stepper interface {
	Step(sys System, x State, t, dt float64) (State, error)
}

// AdaptiveStepper additionally proposes a step size for the next step based
// on a local error tolerance.
type AdaptiveStepper interface {
	Stepper
	StepAdaptive(sys System, x State, t, dt, tol float64) (State, float64, error)
}

// Eval invokes sys.Derive and validates the result. A wrong-length
// derivative or a non-finite component aborts the surrounding integration;
// the offending time and state travel with the error.
func Eval(sys System, x State, t float64) (State, error) {
	dx := sys.Derive(x, t)
	if len(dx) != len(x) {
		return nil, &StepError{Time: t, State: x.Clone(), Err: ErrDimension}
	}
	if !dx.IsValid() {
		return nil, &StepError{Time: t, State: x.Clone(), Err: ErrNonFinite}
	}
	return dx, nil
}

// TimeSpan is the integration horizon [0, End] together with the number of
// uniformly spaced sample times, endpoints included.
type TimeSpan struct {
	End     float64
	Samples int
}

func NewTimeSpan(end float64) TimeSpan {
	return TimeSpan{End: end, Samples: DefaultSamples}
}

func (ts TimeSpan) Validate() error {
	if math.IsNaN(ts.End) || math.IsInf(ts.End, 0) {
		return &DomainError{Param: "end", Value: ts.End, Reason: "must be finite"}
	}
	if ts.End <= 0 {
		return &DomainError{Param: "end", Value: ts.End, Reason: "must be positive"}
	}
	if ts.Samples < 2 {
		return &DomainError{Param: "samples", Value: float64(ts.Samples), Reason: "need at least 2 sample times"}
	}
	return nil
}

// Times returns the sample grid t_i = End*i/(n-1). The sequence is strictly
// increasing and hits 0 and End exactly.
func (ts TimeSpan) Times() []float64 {
	n := ts.Samples
	times := make([]float64, n)
	for i := 1; i < n-1; i++ {
		times[i] = ts.End * float64(i) / float64(n-1)
	}
	times[n-1] = ts.End
	return times
}

// Trajectory is the sole output artifact of a solve: parallel Times and
// States slices with States[i] the state at Times[i]. Consumers treat it as
// read-only.
type Trajectory struct {
	Times  []float64
	States []State
}

func (tr *Trajectory) Len() int { return len(tr.Times) }

// Column extracts one state component across the whole trajectory.
func (tr *Trajectory) Column(i int) []float64 {
	col := make([]float64, len(tr.States))
	for j, s := range tr.States {
		col[j] = s[i]
	}
	return col
}

// Positions and Velocities are the two columns every cataloged system
// guarantees: generalized position and its rate.
func (tr *Trajectory) Positions() []float64  { return tr.Column(0) }
func (tr *Trajectory) Velocities() []float64 { return tr.Column(1) }

func (tr *Trajectory) Final() State {
	if len(tr.States) == 0 {
		return nil
	}
	return tr.States[len(tr.States)-1]
}

// SystemInstance binds one system to one initial state and one time span.
// It is a value object: built once, solved, never mutated.
type SystemInstance struct {
	Name   string
	System System
	X0     State
	Span   TimeSpan
}

func (si SystemInstance) Validate() error {
	if si.System == nil {
		return &DomainError{Param: "system", Reason: "missing system"}
	}
	if err := si.Span.Validate(); err != nil {
		return err
	}
	if len(si.X0) != si.System.Dim() {
		return ErrDimension
	}
	if !si.X0.IsValid() {
		return &DomainError{Param: "x0", Reason: "initial state must be finite"}
	}
	return nil
}
