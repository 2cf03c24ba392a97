// Package tui is the terminal view over /api/docker-info. It fetches the
// payload once when the program starts and renders whatever came back.
package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/melih/lighthouse-info/internal/core/domain"
	"github.com/melih/lighthouse-info/internal/core/ports"
)

// InfoMsg carries a successfully fetched payload.
type InfoMsg struct {
	Info domain.DockerInfo
}

// FetchErrMsg reports a failed fetch. The view keeps its current state.
type FetchErrMsg struct {
	Err error
}

// App is the root bubbletea model.
type App struct {
	fetcher ports.InfoFetcher
	ctx     context.Context
	theme   Theme

	state  domain.DockerInfo
	loaded bool
	err    error

	width int
}

// NewApp returns a view in its initial state. ctx bounds the fetch; cancel it
// when the program exits so an in-flight request is abandoned.
func NewApp(ctx context.Context, fetcher ports.InfoFetcher, theme Theme) App {
	return App{
		fetcher: fetcher,
		ctx:     ctx,
		theme:   theme,
		state:   domain.Detecting(),
	}
}

// Init starts the one fetch this view ever issues.
func (a App) Init() tea.Cmd {
	return fetchCmd(a.ctx, a.fetcher)
}

func fetchCmd(ctx context.Context, f ports.InfoFetcher) tea.Cmd {
	return func() tea.Msg {
		info, err := f.Fetch(ctx)
		if err != nil {
			return FetchErrMsg{Err: err}
		}
		return InfoMsg{Info: info}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case InfoMsg:
		a.state = msg.Info
		a.loaded = true
		return a, nil

	case FetchErrMsg:
		slog.Error("fetch docker info", "error", msg.Err)
		a.err = msg.Err
		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		}
	}
	return a, nil
}

func (a App) View() string {
	out := Render(a.state, &a.theme)
	help := mutedStyle(&a.theme).Render("q quit")
	out = lipgloss.JoinVertical(lipgloss.Center, out, "", help)
	if a.width > 0 {
		out = lipgloss.PlaceHorizontal(a.width, lipgloss.Center, out)
	}
	return out
}

// State returns the current display state.
func (a App) State() domain.DockerInfo { return a.state }

// Loaded reports whether a payload has replaced the placeholder state.
func (a App) Loaded() bool { return a.loaded }

// Err returns the fetch error, if the fetch failed.
func (a App) Err() error { return a.err }
