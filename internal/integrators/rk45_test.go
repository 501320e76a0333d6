package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/mechsim/internal/ode"
)

func TestRK45FixedStepAccuracy(t *testing.T) {
	stepper := NewRK45()
	x := ode.State{1.0, 0.0}
	dt := 0.01

	var err error
	for i := 0; i < 100; i++ {
		x, err = stepper.Step(harmonic{}, x, float64(i)*dt, dt)
		if err != nil {
			t.Fatal(err)
		}
	}

	if math.Abs(x[0]-math.Cos(1)) > 1e-6 {
		t.Errorf("position error too large: got %.10f, expected %.10f", x[0], math.Cos(1))
	}
}

func TestRK45SuggestsLargerStepWhenEasy(t *testing.T) {
	stepper := NewRK45()
	// Tiny step on a smooth system: local error is far below tolerance, so
	// the suggested next step must grow.
	_, dtNext, err := stepper.StepAdaptive(harmonic{}, ode.State{1, 0}, 0, 1e-4, 1e-6)
	if err != nil {
		t.Fatal(err)
	}
	if dtNext <= 1e-4 {
		t.Errorf("expected step growth, got dtNext=%g", dtNext)
	}
}

func TestRK45ShrinksStepWhenTight(t *testing.T) {
	stepper := NewRK45()
	_, dtNext, err := stepper.StepAdaptive(harmonic{}, ode.State{1, 0}, 0, 1.0, 1e-12)
	if err != nil {
		t.Fatal(err)
	}
	if dtNext >= 1.0 {
		t.Errorf("expected step shrink under tight tolerance, got dtNext=%g", dtNext)
	}
}
