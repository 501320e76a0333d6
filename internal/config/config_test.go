package config

import (
	"math"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.System != "spring_mass_damper" {
		t.Errorf("unexpected default system %q", cfg.System)
	}
	if cfg.Duration != 20.0 || cfg.Samples != 1000 {
		t.Errorf("unexpected default span: %g s, %d samples", cfg.Duration, cfg.Samples)
	}
	span := cfg.Span()
	if err := span.Validate(); err != nil {
		t.Errorf("default span invalid: %v", err)
	}
}

func TestSpanFillsSampleDefault(t *testing.T) {
	cfg := &Config{Duration: 20}
	if got := cfg.Span().Samples; got != 1000 {
		t.Errorf("expected default 1000 samples, got %d", got)
	}
}

func TestReferencePresets(t *testing.T) {
	names := ListPresets()
	if len(names) != 3 {
		t.Fatalf("expected 3 presets, got %v", names)
	}
	for _, name := range names {
		cfg := GetPreset(name)
		if cfg.Duration != 20.0 {
			t.Errorf("%s: expected 20s horizon, got %g", name, cfg.Duration)
		}
		if cfg.Samples != 1000 {
			t.Errorf("%s: expected 1000 samples, got %d", name, cfg.Samples)
		}
		if len(cfg.InitState) != 2 {
			t.Errorf("%s: expected 2-dim initial state, got %v", name, cfg.InitState)
		}
	}

	pendulum := GetPreset("pendulum_quarter")
	if pendulum == nil {
		t.Fatal("pendulum_quarter preset missing")
	}
	if pendulum.InitState[0] != math.Pi/4 {
		t.Errorf("expected quarter-pi initial angle, got %g", pendulum.InitState[0])
	}
	if pendulum.Params["gravity"] != 9.81 {
		t.Errorf("expected gravity 9.81, got %g", pendulum.Params["gravity"])
	}

	spring := GetPreset("spring_damped")
	if spring.Params["damping"] != 0.5 || spring.Params["stiffness"] != 2.0 {
		t.Errorf("unexpected spring parameters: %v", spring.Params)
	}

	if GetPreset("nope") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	orig := GetPreset("rotor_torque")
	if err := Save(path, orig); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.System != orig.System || loaded.Duration != orig.Duration {
		t.Errorf("roundtrip mismatch: %+v vs %+v", loaded, orig)
	}
	if loaded.Params["inertia"] != 1.0 || loaded.Params["torque"] != 1.0 {
		t.Errorf("roundtrip lost params: %v", loaded.Params)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
