package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/mechsim/internal/mech"
	"github.com/san-kum/mechsim/internal/ode"
)

// analyticSpring samples the exact undamped solution x = cos(w t), so its
// energy is conserved up to rounding.
func analyticSpring(t *testing.T, n int) (ode.System, *ode.Trajectory) {
	t.Helper()
	sys, err := mech.NewSpringMassDamper(1.0, 0, 2.0)
	if err != nil {
		t.Fatal(err)
	}
	w := math.Sqrt(2.0)
	traj := &ode.Trajectory{
		Times:  make([]float64, n),
		States: make([]ode.State, n),
	}
	for i := 0; i < n; i++ {
		ti := 20.0 * float64(i) / float64(n-1)
		traj.Times[i] = ti
		traj.States[i] = ode.State{math.Cos(w * ti), -w * math.Sin(w * ti)}
	}
	return sys, traj
}

func TestEnergyDriftConservative(t *testing.T) {
	sys, traj := analyticSpring(t, 500)
	drift, ok := EnergyDrift(sys, traj)
	if !ok {
		t.Fatal("spring should report energy")
	}
	if drift > 1e-12 {
		t.Errorf("analytic trajectory should conserve energy, drift %g", drift)
	}
}

func TestEnergyDriftNonHamiltonian(t *testing.T) {
	sys, err := mech.NewRotationalInertia(1.0, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	traj := &ode.Trajectory{
		Times:  []float64{0, 1},
		States: []ode.State{{0, 0}, {0.5, 1}},
	}
	if _, ok := EnergyDrift(sys, traj); ok {
		t.Error("driven rotor should not report energy drift")
	}
}
