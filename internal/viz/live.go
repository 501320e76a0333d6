package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/mechsim/internal/ode"
)

// Play replays a recorded trajectory in the terminal at the given frame
// rate. The whole horizon plays back in about ten seconds regardless of
// sample count.
func Play(title string, traj *ode.Trajectory, fps int) error {
	if fps <= 0 {
		fps = 30
	}
	step := traj.Len() / (fps * 10)
	if step < 1 {
		step = 1
	}
	m := playModel{title: title, traj: traj, fps: fps, step: step}
	_, err := tea.NewProgram(m).Run()
	return err
}

type tickMsg time.Time

type playModel struct {
	title  string
	traj   *ode.Trajectory
	fps    int
	step   int
	idx    int
	paused bool
}

func (m playModel) Init() tea.Cmd { return m.tick() }

func (m playModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.idx = 0
		}
	case tickMsg:
		if !m.paused && m.idx < m.traj.Len()-1 {
			m.idx += m.step
			if m.idx > m.traj.Len()-1 {
				m.idx = m.traj.Len() - 1
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(renderSeries(m.traj.Positions()[:m.idx+1]))
	b.WriteString("\n\n")

	t := m.traj.Times[m.idx]
	x := m.traj.States[m.idx]
	b.WriteString(ValueStyle.Render(fmt.Sprintf("t=%7.3f  pos=%10.6f  vel=%10.6f", t, x[0], x[1])))
	b.WriteString("\n")

	status := "playing"
	if m.paused {
		status = "paused"
	}
	b.WriteString(CaptionStyle.Render(fmt.Sprintf("%s %d/%d", status, m.idx+1, m.traj.Len())))
	b.WriteString("  ")
	b.WriteString(KeyHint.Render("space pause · r restart · q quit"))
	b.WriteString("\n")

	return b.String()
}
