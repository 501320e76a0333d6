package config

import (
	"math"
	"sort"
)

// Presets are the reference scenarios: one per cataloged system, each with
// a 20 second horizon and 1000 samples.
var Presets = map[string]*Config{
	"spring_damped": {
		System:     "spring_mass_damper",
		Integrator: "rk4",
		Duration:   20.0,
		Samples:    1000,
		InitState:  []float64{1.0, 0.0},
		Params:     map[string]float64{"mass": 1.0, "damping": 0.5, "stiffness": 2.0},
	},
	"pendulum_quarter": {
		System:     "pendulum",
		Integrator: "rk4",
		Duration:   20.0,
		Samples:    1000,
		InitState:  []float64{math.Pi / 4, 0.0},
		Params:     map[string]float64{"length": 1.0, "gravity": 9.81},
	},
	"rotor_torque": {
		System:     "rotational_inertia",
		Integrator: "rk4",
		Duration:   20.0,
		Samples:    1000,
		InitState:  []float64{0.0, 0.0},
		Params:     map[string]float64{"inertia": 1.0, "torque": 1.0},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
