package mech

import "github.com/san-kum/mechsim/internal/ode"

// RotationalInertia models a rigid body spun up by a constant torque:
//
//	theta'' = torque / I
//
// The torque does work on the body, so this system carries no Energy method.
type RotationalInertia struct {
	Inertia float64
	Torque  float64
}

func NewRotationalInertia(inertia, torque float64) (*RotationalInertia, error) {
	if err := checkPositive("rotational_inertia", "inertia", inertia); err != nil {
		return nil, err
	}
	if err := checkFinite("rotational_inertia", "torque", torque); err != nil {
		return nil, err
	}
	return &RotationalInertia{Inertia: inertia, Torque: torque}, nil
}

func (r *RotationalInertia) Dim() int { return 2 }

func (r *RotationalInertia) Derive(x ode.State, t float64) ode.State {
	omega := x[1]
	return ode.State{omega, r.Torque / r.Inertia}
}
