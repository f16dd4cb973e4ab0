package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name        string
	Title       lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Button      lipgloss.Style
	Secondary   lipgloss.Style
	Panel       lipgloss.Style
	Shimmer     lipgloss.Style
	Spinner     lipgloss.Style
	Toast       lipgloss.Style
	Destructive lipgloss.Style
}

func Dark() Theme {
	return build("dark", palette{
		accent:  "#9333ea",
		accent2: "#2563eb",
		fg:      "#f8fafc",
		muted:   "#94a3b8",
		panel:   "#1e293b",
		danger:  "#ef4444",
	})
}

func Light() Theme {
	return build("light", palette{
		accent:  "#7e22ce",
		accent2: "#1d4ed8",
		fg:      "#0f172a",
		muted:   "#64748b",
		panel:   "#e2e8f0",
		danger:  "#dc2626",
	})
}

// Resolve maps a configured name to a theme; "system" follows the terminal
// background.
func Resolve(name string) Theme {
	switch name {
	case "light":
		return Light()
	case "dark":
		return Dark()
	default:
		if lipgloss.HasDarkBackground() {
			return Dark()
		}
		return Light()
	}
}

// Toggle flips between dark and light.
func (t Theme) Toggle() Theme {
	if t.Name == "dark" {
		return Light()
	}
	return Dark()
}

type palette struct {
	accent, accent2, fg, muted, panel, danger lipgloss.Color
}

func build(name string, p palette) Theme {
	return Theme{
		Name:        name,
		Title:       lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Text:        lipgloss.NewStyle().Foreground(p.fg),
		Muted:       lipgloss.NewStyle().Foreground(p.muted),
		Button:      lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#ffffff")).Background(p.accent),
		Secondary:   lipgloss.NewStyle().Padding(0, 1).Foreground(p.fg).Background(p.panel),
		Panel:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.muted),
		Shimmer:     lipgloss.NewStyle().Foreground(p.accent2),
		Spinner:     lipgloss.NewStyle().Foreground(p.accent),
		Toast:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(p.accent2).Padding(0, 1),
		Destructive: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(p.danger).Foreground(p.danger).Padding(0, 1),
	}
}
