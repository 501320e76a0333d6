// Package viz renders trajectories in the terminal. It is a read-only
// consumer of the core's output.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mechsim/internal/ode"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

// RenderTrajectory charts the two state columns against time.
func RenderTrajectory(title string, traj *ode.Trajectory) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(CaptionStyle.Render("position"))
	b.WriteString("\n")
	b.WriteString(renderSeries(traj.Positions()))
	b.WriteString("\n\n")

	b.WriteString(CaptionStyle.Render("velocity"))
	b.WriteString("\n")
	b.WriteString(renderSeries(traj.Velocities()))
	b.WriteString("\n\n")

	end := traj.Times[traj.Len()-1]
	final := traj.Final()
	b.WriteString(CaptionStyle.Render(fmt.Sprintf("t: 0..%.4g s, %d samples", end, traj.Len())))
	b.WriteString("  ")
	b.WriteString(ValueStyle.Render(fmt.Sprintf("final: [%.6g, %.6g]", final[0], final[1])))
	b.WriteString("\n")

	return b.String()
}

func renderSeries(data []float64) string {
	width := plotWidth
	if len(data) < width {
		width = len(data)
	}
	return asciigraph.Plot(data,
		asciigraph.Width(width),
		asciigraph.Height(plotHeight),
	)
}
