// Package storage persists simulation runs under a base directory, one
// directory per run holding metadata.json and trajectory.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/mechsim/internal/ode"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	System     string             `json:"system"`
	Timestamp  time.Time          `json:"timestamp"`
	Integrator string             `json:"integrator"`
	Duration   float64            `json:"duration"`
	Samples    int                `json:"samples"`
	Params     map[string]float64 `json:"params,omitempty"`
	InitState  []float64          `json:"init_state"`
}

// Save writes the run to a new directory and returns its ID. The caller's
// metadata ID and timestamp are overwritten.
func (s *Store) Save(meta RunMetadata, traj *ode.Trajectory) (string, error) {
	meta.Timestamp = time.Now()
	meta.ID = fmt.Sprintf("%s_%d", meta.System, meta.Timestamp.UnixNano())
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "position", "velocity"}); err != nil {
		return "", err
	}
	for i, t := range traj.Times {
		row := []string{
			strconv.FormatFloat(t, 'g', -1, 64),
			strconv.FormatFloat(traj.States[i][0], 'g', -1, 64),
			strconv.FormatFloat(traj.States[i][1], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return meta.ID, w.Error()
}

// List returns metadata for every stored run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.LoadMeta(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) LoadMeta(runID string) (RunMetadata, error) {
	var meta RunMetadata
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return meta, err
	}
	err = json.Unmarshal(data, &meta)
	return meta, err
}

func (s *Store) LoadTrajectory(runID string) (*ode.Trajectory, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("run %s: empty trajectory", runID)
	}

	traj := &ode.Trajectory{
		Times:  make([]float64, 0, len(rows)-1),
		States: make([]ode.State, 0, len(rows)-1),
	}
	for _, row := range rows[1:] {
		if len(row) != 3 {
			return nil, fmt.Errorf("run %s: malformed trajectory row", runID)
		}
		t, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, err
		}
		pos, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, err
		}
		vel, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, err
		}
		traj.Times = append(traj.Times, t)
		traj.States = append(traj.States, ode.State{pos, vel})
	}
	return traj, nil
}
