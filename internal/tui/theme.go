package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the colors used by the view.
type Theme struct {
	Accent lipgloss.Color // cyan
	Label  lipgloss.Color
	Muted  lipgloss.Color // gray
	Border lipgloss.Color
}

// DefaultTheme returns the default color theme using standard terminal colors.
func DefaultTheme() Theme {
	return Theme{
		Accent: lipgloss.Color("14"),
		Label:  lipgloss.Color("15"),
		Muted:  lipgloss.Color("8"),
		Border: lipgloss.Color("240"),
	}
}

func titleStyle(t *Theme) lipgloss.Style { return lipgloss.NewStyle().Bold(true).Foreground(t.Accent) }
func labelStyle(t *Theme) lipgloss.Style { return lipgloss.NewStyle().Bold(true).Foreground(t.Label) }
func mutedStyle(t *Theme) lipgloss.Style { return lipgloss.NewStyle().Foreground(t.Muted) }

func cardStyle(t *Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 2)
}
