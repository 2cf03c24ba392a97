package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/melih/lighthouse-info/internal/adapters/infoclient"
	"github.com/melih/lighthouse-info/internal/config"
	"github.com/melih/lighthouse-info/internal/tui"
)

type options struct {
	configPath string
	url        string
	plain      bool
	logPath    string
}

func parseArgs(args []string, output io.Writer) (*options, error) {
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	fs.SetOutput(output)
	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "path to config file")
	fs.StringVar(&opts.url, "url", "", "info service base URL (overrides config)")
	fs.BoolVar(&opts.plain, "plain", false, "fetch once, print the view and exit")
	fs.StringVar(&opts.logPath, "log", "", "log file while the TUI is running (default: discard)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if opts.url != "" {
		if err := config.ValidateURL(opts.url); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	baseURL := cfg.Viewer.URL
	if opts.url != "" {
		baseURL = opts.url
	}

	client := infoclient.New(baseURL, cfg.Viewer.Timeout.Duration)
	theme := tui.DefaultTheme()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if opts.plain {
		if err := tui.RenderOnce(ctx, client, theme, os.Stdout); err != nil {
			slog.Error("fetch docker info", "url", client.URL(), "error", err)
			os.Exit(1)
		}
		return
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	if opts.logPath != "" {
		f, err := tea.LogToFile(opts.logPath, "viewer")
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	p := tea.NewProgram(tui.NewApp(ctx, client, theme), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui: %v\n", err)
		os.Exit(1)
	}
}
