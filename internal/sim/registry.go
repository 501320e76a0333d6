package sim

import (
	"fmt"
	"sort"

	"github.com/san-kum/mechsim/internal/integrators"
	"github.com/san-kum/mechsim/internal/ode"
)

var steppers = map[string]func() ode.Stepper{
	"euler": func() ode.Stepper { return integrators.NewEuler() },
	"rk4":   func() ode.Stepper { return integrators.NewRK4() },
	"rk45":  func() ode.Stepper { return integrators.NewRK45() },
}

// NewStepper builds a fresh stepper by name ("euler", "rk4", "rk45").
func NewStepper(name string) (ode.Stepper, error) {
	fn, ok := steppers[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func ListSteppers() []string {
	names := make([]string, 0, len(steppers))
	for name := range steppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
