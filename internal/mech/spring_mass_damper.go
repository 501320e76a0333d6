package mech

import "github.com/san-kum/mechsim/internal/ode"

// SpringMassDamper models a mass on a linear spring with viscous damping:
//
//	x'' = (-c x' - k x) / m
type SpringMassDamper struct {
	Mass      float64
	Damping   float64
	Stiffness float64
}

func NewSpringMassDamper(m, c, k float64) (*SpringMassDamper, error) {
	if err := checkPositive("spring_mass_damper", "mass", m); err != nil {
		return nil, err
	}
	if err := checkNonNegative("spring_mass_damper", "damping", c); err != nil {
		return nil, err
	}
	if err := checkNonNegative("spring_mass_damper", "stiffness", k); err != nil {
		return nil, err
	}
	return &SpringMassDamper{Mass: m, Damping: c, Stiffness: k}, nil
}

func (s *SpringMassDamper) Dim() int { return 2 }

func (s *SpringMassDamper) Derive(x ode.State, t float64) ode.State {
	pos, vel := x[0], x[1]
	return ode.State{vel, (-s.Damping*vel - s.Stiffness*pos) / s.Mass}
}

// Energy is the total mechanical energy 0.5 m v^2 + 0.5 k x^2. Conserved
// only when Damping is zero.
func (s *SpringMassDamper) Energy(x ode.State) float64 {
	pos, vel := x[0], x[1]
	return 0.5*s.Mass*vel*vel + 0.5*s.Stiffness*pos*pos
}
