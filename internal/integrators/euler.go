package integrators

import "github.com/san-kum/mechsim/internal/ode"

// Euler is the forward Euler method. First order; kept for comparison runs,
// not for the reference accuracy contract.
type Euler struct{}

func NewEuler() *Euler { return &Euler{} }

func (e *Euler) Step(sys ode.System, x ode.State, t, dt float64) (ode.State, error) {
	dx, err := ode.Eval(sys, x, t)
	if err != nil {
		return nil, err
	}
	result := make(ode.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result, nil
}
