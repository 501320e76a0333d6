// Package export serializes trajectories for external consumers. It only
// ever reads a Trajectory; the core has no dependency on it.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/mechsim/internal/ode"
)

// WriteCSV writes the trajectory as time,position,velocity rows.
func WriteCSV(w io.Writer, traj *ode.Trajectory) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "position", "velocity"}); err != nil {
		return err
	}
	for i, t := range traj.Times {
		row := []string{
			strconv.FormatFloat(t, 'g', -1, 64),
			strconv.FormatFloat(traj.States[i][0], 'g', -1, 64),
			strconv.FormatFloat(traj.States[i][1], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonRun struct {
	System string      `json:"system"`
	Steps  int         `json:"steps"`
	Times  []float64   `json:"times"`
	States [][]float64 `json:"states"`
}

// WriteJSON writes the trajectory with its system name as indented JSON.
func WriteJSON(w io.Writer, system string, traj *ode.Trajectory) error {
	data := jsonRun{
		System: system,
		Steps:  traj.Len(),
		Times:  traj.Times,
		States: make([][]float64, len(traj.States)),
	}
	for i, s := range traj.States {
		data.States[i] = s
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
