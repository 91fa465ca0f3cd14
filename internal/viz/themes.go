package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the terminal colors used around the panels. Scenario and
// dashboard text keep the colors the scene assigns them.
type Theme struct {
	Name      string
	Border    lipgloss.Color
	Title     lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Emergency lipgloss.Color
	Airbag    lipgloss.Color
}

var (
	ThemeAura = Theme{
		Name:      "aura",
		Border:    lipgloss.Color("#8888aa"),
		Title:     lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#dddddd"),
		Muted:     lipgloss.Color("#666688"),
		Emergency: lipgloss.Color("#dc0000"),
		Airbag:    lipgloss.Color("#add8e6"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Border:    lipgloss.Color("#00cc00"),
		Title:     lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Emergency: lipgloss.Color("#ff0000"),
		Airbag:    lipgloss.Color("#88ff88"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Border:    lipgloss.Color("#888888"),
		Title:     lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Emergency: lipgloss.Color("#ff0000"),
		Airbag:    lipgloss.Color("#0088ff"),
	}

	Themes = []Theme{
		ThemeAura,
		ThemeRetroGreen,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeAura
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeAura
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
