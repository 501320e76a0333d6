package analysis

import (
	"math"

	"github.com/san-kum/mechsim/internal/ode"
)

// EnergyDrift returns the maximum relative deviation of total mechanical
// energy from its initial value over the trajectory. The second return is
// false when the system does not report energy (non-conservative or not a
// Hamiltonian system).
func EnergyDrift(sys ode.System, traj *ode.Trajectory) (float64, bool) {
	h, ok := sys.(ode.Hamiltonian)
	if !ok || traj.Len() == 0 {
		return 0, false
	}

	initial := h.Energy(traj.States[0])
	if initial == 0 {
		return 0, true
	}

	maxDrift := 0.0
	for _, x := range traj.States[1:] {
		drift := math.Abs(h.Energy(x)-initial) / math.Abs(initial)
		maxDrift = math.Max(maxDrift, drift)
	}
	return maxDrift, true
}
