package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/mechsim/internal/ode"
)

func sampleTrajectory() *ode.Trajectory {
	return &ode.Trajectory{
		Times:  []float64{0, 0.5, 1.0},
		States: []ode.State{{1, 0}, {0.6, -0.4}, {0.2, -0.7}},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleTrajectory()); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "time,position,velocity" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "0,1,0" {
		t.Errorf("unexpected first row: %q", lines[1])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, "pendulum", sampleTrajectory()); err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		System string      `json:"system"`
		Steps  int         `json:"steps"`
		Times  []float64   `json:"times"`
		States [][]float64 `json:"states"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.System != "pendulum" || decoded.Steps != 3 {
		t.Errorf("unexpected header fields: %+v", decoded)
	}
	if len(decoded.Times) != 3 || len(decoded.States) != 3 {
		t.Errorf("unexpected series lengths: %d, %d", len(decoded.Times), len(decoded.States))
	}
	if decoded.States[0][0] != 1 || decoded.States[0][1] != 0 {
		t.Errorf("unexpected initial state: %v", decoded.States[0])
	}
}
