package mech

import (
	"math"

	"github.com/san-kum/mechsim/internal/ode"
)

func checkFinite(system, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ode.DomainError{System: system, Param: name, Value: v, Reason: "must be finite"}
	}
	return nil
}

func checkPositive(system, name string, v float64) error {
	if err := checkFinite(system, name, v); err != nil {
		return err
	}
	if v <= 0 {
		return &ode.DomainError{System: system, Param: name, Value: v, Reason: "must be positive"}
	}
	return nil
}

func checkNonNegative(system, name string, v float64) error {
	if err := checkFinite(system, name, v); err != nil {
		return err
	}
	if v < 0 {
		return &ode.DomainError{System: system, Param: name, Value: v, Reason: "must be non-negative"}
	}
	return nil
}
