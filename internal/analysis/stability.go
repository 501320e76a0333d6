// Package analysis inspects systems and trajectories after the fact: local
// linearization and eigenvalue stability, and energy drift for conservative
// systems. The core never calls back into this package.
package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/mechsim/internal/ode"
)

// jacobianStep is the central-difference perturbation size.
const jacobianStep = 1e-6

// Jacobian approximates df/dx at (x, t) by central finite differences. Each
// derivative evaluation goes through ode.Eval, so domain failures surface
// with the probed state attached.
func Jacobian(sys ode.System, x ode.State, t float64) (*mat.Dense, error) {
	n := sys.Dim()
	if len(x) != n {
		return nil, ode.ErrDimension
	}

	jac := mat.NewDense(n, n, nil)
	probe := x.Clone()
	for j := 0; j < n; j++ {
		h := jacobianStep
		probe[j] = x[j] + h
		fwd, err := ode.Eval(sys, probe, t)
		if err != nil {
			return nil, err
		}
		probe[j] = x[j] - h
		bwd, err := ode.Eval(sys, probe, t)
		if err != nil {
			return nil, err
		}
		probe[j] = x[j]

		for i := 0; i < n; i++ {
			jac.Set(i, j, (fwd[i]-bwd[i])/(2*h))
		}
	}
	return jac, nil
}

// Report describes the linearization of a system about a state.
type Report struct {
	Jacobian    *mat.Dense
	Eigenvalues []complex128
	Class       string
}

// Linearize builds the Jacobian at (x, t) and classifies the equilibrium by
// the real parts of its eigenvalues.
func Linearize(sys ode.System, x ode.State, t float64) (*Report, error) {
	jac, err := Jacobian(sys, x, t)
	if err != nil {
		return nil, err
	}

	var eig mat.Eigen
	if ok := eig.Factorize(jac, mat.EigenNone); !ok {
		return nil, fmt.Errorf("eigenvalue factorization failed")
	}
	values := eig.Values(nil)

	return &Report{
		Jacobian:    jac,
		Eigenvalues: values,
		Class:       Classify(values),
	}, nil
}

// Classify maps eigenvalue real parts to a stability label: "stable" when
// all are negative, "unstable" when any is positive, "marginal" otherwise.
func Classify(eigs []complex128) string {
	// Real parts within tol of zero count as zero; finite differencing and
	// the eigensolver both leave noise at this scale.
	const tol = 1e-7

	hasZero := false
	for _, e := range eigs {
		re := real(e)
		switch {
		case re > tol:
			return "unstable"
		case re >= -tol:
			hasZero = true
		}
	}
	if hasZero {
		return "marginal"
	}
	return "stable"
}
