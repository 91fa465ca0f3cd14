package viz

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/aurasim/internal/config"
	"github.com/san-kum/aurasim/internal/scene"
	"github.com/san-kum/aurasim/internal/sim"
)

type TickMsg time.Time

// Model drives a Simulation at the configured frame rate and draws it
// with a Terminal renderer.
type Model struct {
	cfg    *config.Config
	sim    *sim.Simulation
	term   *Terminal
	snap   sim.Snapshot
	theme  Theme
	frame  time.Duration
	paused bool
}

func NewModel(cfg *config.Config, alarm sim.Alarm, theme Theme) Model {
	s := sim.New(cfg, alarm)
	return Model{
		cfg:   cfg,
		sim:   s,
		term:  NewTerminal(cfg),
		snap:  s.Snapshot(),
		theme: theme,
		frame: time.Duration(float64(time.Second) / cfg.FrameRate()),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			log.Printf("viz: quit at frame %d", m.snap.Frame)
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "t":
			m.theme = NextTheme(m.theme)
		}
	case TickMsg:
		if !m.paused {
			m.snap = m.sim.Step()
		}
		return m, m.tick()
	}
	return m, nil
}

// Snapshot returns the frame currently shown.
func (m Model) Snapshot() sim.Snapshot { return m.snap }

func (m Model) View() string {
	scene.Compose(m.term, m.snap, m.cfg)

	d := m.snap.Dashboard
	status := fmt.Sprintf("frame %4d  %5.1fs  ", m.snap.Frame, m.snap.Elapsed)
	if m.paused {
		status += "PAUSED  "
	}
	footer := lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.NewStyle().Foreground(m.theme.Text).Render(status),
		BatteryBar(d.BatteryPercent, 20, foreground(d.BatteryColor, m.theme)),
	)
	help := helpStyle.Foreground(m.theme.Muted).Render("SP:Pause  T:Theme (" + m.theme.Name + ")  Q/Esc:Quit")
	return lipgloss.JoinVertical(lipgloss.Left, m.term.Render(m.theme), footer, help)
}

// Run starts the terminal program and blocks until the user quits.
func Run(cfg *config.Config, alarm sim.Alarm, theme Theme) error {
	p := tea.NewProgram(NewModel(cfg, alarm, theme), tea.WithAltScreen(), tea.WithFPS(cfg.FPS))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viz: %w", err)
	}
	return nil
}
