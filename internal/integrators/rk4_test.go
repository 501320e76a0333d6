package integrators

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/mechsim/internal/ode"
)

// harmonic is x'' = -x, solution cos/sin from [1, 0].
type harmonic struct{}

func (harmonic) Derive(x ode.State, t float64) ode.State { return ode.State{x[1], -x[0]} }
func (harmonic) Dim() int                                { return 2 }

type truncated struct{}

func (truncated) Derive(x ode.State, t float64) ode.State { return ode.State{x[1]} }
func (truncated) Dim() int                                { return 2 }

func TestRK4Accuracy(t *testing.T) {
	stepper := NewRK4()
	x := ode.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	var err error
	for i := 0; i < steps; i++ {
		x, err = stepper.Step(harmonic{}, x, float64(i)*dt, dt)
		if err != nil {
			t.Fatal(err)
		}
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}
	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestEulerRoughAccuracy(t *testing.T) {
	stepper := NewEuler()
	x := ode.State{1.0, 0.0}
	dt := 0.01

	var err error
	for i := 0; i < 100; i++ {
		x, err = stepper.Step(harmonic{}, x, float64(i)*dt, dt)
		if err != nil {
			t.Fatal(err)
		}
	}

	if math.Abs(x[0]-math.Cos(1)) > 0.05 {
		t.Errorf("euler drifted too far: got %.4f, expected ~%.4f", x[0], math.Cos(1))
	}
}

func TestRK4RejectsDimensionMismatch(t *testing.T) {
	stepper := NewRK4()
	_, err := stepper.Step(truncated{}, ode.State{1, 0}, 0, 0.01)
	if !errors.Is(err, ode.ErrDimension) {
		t.Fatalf("expected ErrDimension, got %v", err)
	}
}
