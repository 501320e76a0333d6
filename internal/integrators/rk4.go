package integrators

import "github.com/san-kum/mechsim/internal/ode"

// RK4 is the classical fourth-order Runge-Kutta method. A single stepper
// reuses its scratch buffer across steps, so it is not safe for concurrent
// use; give each goroutine its own.
type RK4 struct {
	scratch ode.State
}

func NewRK4() *RK4 { return &RK4{} }

func (r *RK4) Step(sys ode.System, x ode.State, t, dt float64) (ode.State, error) {
	n := len(x)
	if len(r.scratch) != n {
		r.scratch = make(ode.State, n)
	}

	k1, err := ode.Eval(sys, x, t)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*0.5*k1[i]
	}
	k2, err := ode.Eval(sys, r.scratch, t+dt*0.5)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*0.5*k2[i]
	}
	k3, err := ode.Eval(sys, r.scratch, t+dt*0.5)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*k3[i]
	}
	k4, err := ode.Eval(sys, r.scratch, t+dt)
	if err != nil {
		return nil, err
	}

	result := make(ode.State, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + dt6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return result, nil
}
