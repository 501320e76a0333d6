package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/mechsim/internal/ode"
)

func TestRenderTrajectory(t *testing.T) {
	traj := &ode.Trajectory{
		Times:  []float64{0, 0.5, 1.0, 1.5},
		States: []ode.State{{1, 0}, {0.6, -0.4}, {0.2, -0.7}, {-0.1, -0.6}},
	}

	out := RenderTrajectory("spring_mass_damper", traj)
	if out == "" {
		t.Fatal("empty render")
	}
	for _, want := range []string{"spring_mass_damper", "position", "velocity", "4 samples"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}
