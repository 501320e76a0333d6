package export

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/mechsim/internal/ode"
)

// SavePNG renders position and velocity against time into one PNG.
func SavePNG(path, title string, traj *ode.Trajectory) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (s)"
	p.Legend.Top = true

	pos, err := plotter.NewLine(points(traj.Times, traj.Positions()))
	if err != nil {
		return fmt.Errorf("position line: %w", err)
	}
	pos.LineStyle.Width = vg.Points(1.5)

	vel, err := plotter.NewLine(points(traj.Times, traj.Velocities()))
	if err != nil {
		return fmt.Errorf("velocity line: %w", err)
	}
	vel.LineStyle.Width = vg.Points(1.5)
	vel.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(pos, vel)
	p.Legend.Add("position", pos)
	p.Legend.Add("velocity", vel)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

func points(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}
