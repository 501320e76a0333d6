package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mechsim/internal/ode"
)

const (
	DefaultDuration   = 20.0
	DefaultIntegrator = "rk4"
)

type Config struct {
	System     string             `yaml:"system"`
	Integrator string             `yaml:"integrator"`
	Duration   float64            `yaml:"duration"`
	Samples    int                `yaml:"samples"`
	Substeps   int                `yaml:"substeps"`
	Tolerance  float64            `yaml:"tolerance"`
	InitState  []float64          `yaml:"init_state"`
	Params     map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		System:     "spring_mass_damper",
		Integrator: DefaultIntegrator,
		Duration:   DefaultDuration,
		Samples:    ode.DefaultSamples,
		InitState:  []float64{1.0, 0.0},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Span builds the time span described by the config.
func (c *Config) Span() ode.TimeSpan {
	samples := c.Samples
	if samples == 0 {
		samples = ode.DefaultSamples
	}
	return ode.TimeSpan{End: c.Duration, Samples: samples}
}
