package mech

import (
	"math"

	"github.com/san-kum/mechsim/internal/ode"
)

// Pendulum models a point mass on a massless rigid rod:
//
//	theta'' = -(g / l) sin(theta)
//
// Undamped and unforced, so no small-angle approximation is made.
type Pendulum struct {
	Length  float64
	Gravity float64
}

func NewPendulum(l, g float64) (*Pendulum, error) {
	if err := checkPositive("pendulum", "length", l); err != nil {
		return nil, err
	}
	if err := checkNonNegative("pendulum", "gravity", g); err != nil {
		return nil, err
	}
	return &Pendulum{Length: l, Gravity: g}, nil
}

func (p *Pendulum) Dim() int { return 2 }

func (p *Pendulum) Derive(x ode.State, t float64) ode.State {
	theta, omega := x[0], x[1]
	return ode.State{omega, -(p.Gravity / p.Length) * math.Sin(theta)}
}

// Energy is the specific mechanical energy (per unit mass):
// 0.5 (l omega)^2 + g l (1 - cos theta).
func (p *Pendulum) Energy(x ode.State) float64 {
	theta, omega := x[0], x[1]
	v := p.Length * omega
	return 0.5*v*v + p.Gravity*p.Length*(1-math.Cos(theta))
}
