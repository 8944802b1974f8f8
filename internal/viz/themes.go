package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour scheme for bars and text.
type Theme struct {
	Name   string
	Bar    lipgloss.Color
	Left   lipgloss.Color
	Right  lipgloss.Color
	Sorted lipgloss.Color
	Text   lipgloss.Color
	Accent lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
	Keys   lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:   "classic",
		Bar:    lipgloss.Color("#4682ff"),
		Left:   lipgloss.Color("#ff5050"),
		Right:  lipgloss.Color("#50ff50"),
		Sorted: lipgloss.Color("#ffc832"),
		Text:   lipgloss.Color("#ffffff"),
		Accent: lipgloss.Color("#64c8ff"),
		Muted:  lipgloss.Color("#888899"),
		Border: lipgloss.Color("#444466"),
		Keys:   lipgloss.Color("#ffff00"),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Bar:    lipgloss.Color("#00ffff"),
		Left:   lipgloss.Color("#ff00ff"),
		Right:  lipgloss.Color("#00ff88"),
		Sorted: lipgloss.Color("#ffff00"),
		Text:   lipgloss.Color("#ffffff"),
		Accent: lipgloss.Color("#ff00ff"),
		Muted:  lipgloss.Color("#666666"),
		Border: lipgloss.Color("#444466"),
		Keys:   lipgloss.Color("#ffff00"),
	}

	ThemeRetro = Theme{
		Name:   "retro",
		Bar:    lipgloss.Color("#00cc00"),
		Left:   lipgloss.Color("#88ff88"),
		Right:  lipgloss.Color("#ffff00"),
		Sorted: lipgloss.Color("#00ff00"),
		Text:   lipgloss.Color("#00ff00"),
		Accent: lipgloss.Color("#88ff88"),
		Muted:  lipgloss.Color("#005500"),
		Border: lipgloss.Color("#005500"),
		Keys:   lipgloss.Color("#88ff88"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Bar:    lipgloss.Color("#0077be"),
		Left:   lipgloss.Color("#ff4444"),
		Right:  lipgloss.Color("#00ff88"),
		Sorted: lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#e0f0ff"),
		Accent: lipgloss.Color("#00a8cc"),
		Muted:  lipgloss.Color("#4488aa"),
		Border: lipgloss.Color("#4488aa"),
		Keys:   lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Bar:    lipgloss.Color("#ff9ff3"),
		Left:   lipgloss.Color("#ff4757"),
		Right:  lipgloss.Color("#5fd068"),
		Sorted: lipgloss.Color("#feca57"),
		Text:   lipgloss.Color("#fff5f5"),
		Accent: lipgloss.Color("#ff6b6b"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Border: lipgloss.Color("#8b6b8c"),
		Keys:   lipgloss.Color("#ffc048"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetro,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
