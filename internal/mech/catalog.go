package mech

import (
	"fmt"
	"sort"

	"github.com/san-kum/mechsim/internal/ode"
)

// Builder constructs a system from named parameters; missing names fall
// back to the builder's defaults.
type Builder func(params map[string]float64) (ode.System, error)

// Catalog is an explicit, immutable registry of named system constructors.
type Catalog struct {
	builders map[string]Builder
}

func NewCatalog() *Catalog {
	c := &Catalog{builders: make(map[string]Builder)}

	c.builders["spring_mass_damper"] = func(p map[string]float64) (ode.System, error) {
		return NewSpringMassDamper(
			param(p, "mass", 1.0),
			param(p, "damping", 0.5),
			param(p, "stiffness", 2.0),
		)
	}
	c.builders["pendulum"] = func(p map[string]float64) (ode.System, error) {
		return NewPendulum(
			param(p, "length", 1.0),
			param(p, "gravity", 9.81),
		)
	}
	c.builders["rotational_inertia"] = func(p map[string]float64) (ode.System, error) {
		return NewRotationalInertia(
			param(p, "inertia", 1.0),
			param(p, "torque", 1.0),
		)
	}

	return c
}

func (c *Catalog) New(name string, params map[string]float64) (ode.System, error) {
	fn, ok := c.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown system: %s", name)
	}
	return fn(params)
}

// Instance builds a system and binds it to an initial state and span,
// validating the result.
func (c *Catalog) Instance(name string, params map[string]float64, x0 ode.State, span ode.TimeSpan) (ode.SystemInstance, error) {
	sys, err := c.New(name, params)
	if err != nil {
		return ode.SystemInstance{}, err
	}
	inst := ode.SystemInstance{Name: name, System: sys, X0: x0.Clone(), Span: span}
	if err := inst.Validate(); err != nil {
		return ode.SystemInstance{}, err
	}
	return inst, nil
}

func (c *Catalog) Systems() []string {
	names := make([]string, 0, len(c.builders))
	for name := range c.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func param(p map[string]float64, name string, def float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}
