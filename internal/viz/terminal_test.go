package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/aurasim/internal/config"
	"github.com/san-kum/aurasim/internal/dynamo"
	"github.com/san-kum/aurasim/internal/scene"
	"github.com/san-kum/aurasim/internal/sim"
)

func render(frames int) (*Terminal, string) {
	cfg := config.DefaultConfig()
	s := sim.New(cfg, nil)
	snap := s.Snapshot()
	for s.Frame() < frames {
		snap = s.Step()
	}
	term := NewTerminal(cfg)
	scene.Compose(term, snap, cfg)
	return term, term.Render(ThemeMinimal)
}

func TestTerminalBucketsTextByPanel(t *testing.T) {
	term, out := render(10)

	if len(term.panels[0].texts) != 2 || len(term.panels[1].texts) != 2 || len(term.panels[2].texts) != 2 {
		t.Errorf("expected title and status in each scenario panel")
	}
	if term.panels[3].alert {
		t.Error("alert box before the airbag fall finished")
	}
	for _, want := range []string{"SKENARIO 1", "Sedang Duduk...", "RINGKASAN HASIL:", "Skenario 3 (Jatuh):"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	for i := 0; i < 3; i++ {
		if !term.panels[i].drawn {
			t.Errorf("panel %d has no figure", i)
		}
	}
	if term.panels[3].drawn {
		t.Error("dividers and rules should not reach the dashboard canvas")
	}
}

func TestTerminalAlert(t *testing.T) {
	term, out := render(75)

	if !term.panels[3].alert {
		t.Fatal("expected alert box on the dashboard panel")
	}
	for _, want := range []string{"ALERT DARURAT", "Lat: -6.2088", "[▓▓]", "HASIL: AMAN (Terlindungi)"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestTerminalAirbagDots(t *testing.T) {
	term, _ := render(40)
	bag := term.panels[2].bag
	found := false
	for _, row := range bag.Grid {
		for _, r := range row {
			found = found || r != blank
		}
	}
	if !found {
		t.Error("deployed airbag not rasterized")
	}
	for _, row := range term.panels[0].bag.Grid {
		for _, r := range row {
			if r != blank {
				t.Fatal("airbag drawn in a panel without one")
			}
		}
	}
}

func TestTextLinesOrder(t *testing.T) {
	items := []textItem{
		{x: 10, y: 50, text: "b"},
		{x: 100, y: 20, text: "right"},
		{x: 0, y: 20, text: "left"},
	}
	lines := textLines(items, ThemeMinimal, panelCols)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "left") || strings.Index(lines[0], "left") > strings.Index(lines[0], "right") {
		t.Errorf("expected same-y items joined left to right, got %q", lines[0])
	}
}

func TestForegroundKeepsSceneColors(t *testing.T) {
	if foreground(dynamo.Black, ThemeAura) != ThemeAura.Text {
		t.Error("black text should use the theme text color")
	}
	if foreground(dynamo.RGB(200, 0, 0), ThemeAura) != "#c80000" {
		t.Errorf("unexpected color %v", foreground(dynamo.RGB(200, 0, 0), ThemeAura))
	}
}

func TestModelUpdate(t *testing.T) {
	m := NewModel(config.DefaultConfig(), nil, ThemeAura)

	next, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	m = next.(Model)
	if m.Snapshot().Frame != 1 {
		t.Errorf("expected frame 1, got %d", m.Snapshot().Frame)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")})
	m = next.(Model)
	next, _ = m.Update(TickMsg{})
	m = next.(Model)
	if m.Snapshot().Frame != 1 {
		t.Error("paused model advanced")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	if next.(Model).theme.Name != ThemeRetroGreen.Name {
		t.Errorf("expected theme to cycle, got %s", next.(Model).theme.Name)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should return tea.Quit")
	}
	if !strings.Contains(m.View(), "SKENARIO 2") {
		t.Error("view missing panels")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "aura" {
		t.Error("unknown theme should fall back to aura")
	}
	if NextTheme(ThemeMinimal).Name != "aura" {
		t.Error("theme cycle should wrap")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names mismatch")
	}
}
