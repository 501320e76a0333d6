// Package ode provides the core primitives for simulating small mechanical
// systems as first-order ODE systems.
//
// The package defines the fundamental types and interfaces:
//
//   - [State]: vector of generalized coordinates and their rates
//   - [System]: the state-derivative capability (dX/dt = f(X, t))
//   - [TimeSpan]: integration horizon and sampling resolution
//   - [Trajectory]: states recorded at the sampled times
//   - [SystemInstance]: one system bound to an initial state and a span
//
// Concrete systems live in the mech package; steppers live in the
// integrators package; the sim package turns an instance into a Trajectory.
//
// # Determinism
//
// Everything here is pure computation: solving the same SystemInstance twice
// yields bit-identical trajectories. Failures (domain violations, non-finite
// evaluations) surface immediately and are never retried.
package ode
