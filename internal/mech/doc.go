// Package mech provides the mechanical system catalog: concrete
// [ode.System] implementations parameterized by physical constants.
//
//   - [SpringMassDamper]: mass on a damped spring
//   - [Pendulum]: point mass on a rigid rod
//   - [RotationalInertia]: rigid body under constant torque
//
// Each model is a plain immutable value holding only its own parameters;
// constructors reject physically meaningless parameters (zero or negative
// mass, length, inertia; anything non-finite) with an [ode.DomainError].
// All three systems are autonomous and two-dimensional: state[0] is the
// generalized position, state[1] its rate.
//
// Conservative models also implement [ode.Hamiltonian] so energy drift can
// be monitored.
package mech
