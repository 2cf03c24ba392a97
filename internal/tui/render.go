package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/melih/lighthouse-info/internal/core/domain"
)

const (
	appTitle     = "Sample Docker App"
	noContainers = "No containers running."
)

// Render draws the three info sections for state. It depends on nothing but
// its arguments, so equal states always render identically. Cards grow to fit
// their content; values are never wrapped or cut.
func Render(state domain.DockerInfo, theme *Theme) string {
	header := titleStyle(theme).Render(appTitle)

	mode := card(theme, "Docker Mode", state.Mode)

	node := card(theme, "Node Info",
		field(theme, "Name:", state.NodeName),
		field(theme, "IP Address:", state.NodeIP),
	)

	var rows []string
	if len(state.Containers) == 0 {
		rows = append(rows, noContainers)
	} else {
		for i, c := range state.Containers {
			if i > 0 {
				rows = append(rows, "")
			}
			rows = append(rows, field(theme, "Name:", c.Name), field(theme, "IP:", c.IP))
		}
	}
	containers := card(theme, "Containers", rows...)

	return lipgloss.JoinVertical(lipgloss.Center, header, "", mode, node, containers)
}

func card(theme *Theme, title string, lines ...string) string {
	body := titleStyle(theme).Render(title) + "\n" + strings.Join(lines, "\n")
	return cardStyle(theme).Render(body)
}

func field(theme *Theme, label, value string) string {
	return labelStyle(theme).Render(label) + " " + value
}
