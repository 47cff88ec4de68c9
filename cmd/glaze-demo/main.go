package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/glaze-ui/glaze/internal/config"
	"github.com/glaze-ui/glaze/internal/logging"
	"github.com/glaze-ui/glaze/internal/logging/events"
)

func main() {
	cfg := config.MustLoad()
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	traceStartup(cfg)

	if err := run(cfg); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal")
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(newDemo(cfg), opts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// traceStartup bundles runtime context for trace logging.
func traceStartup(cfg config.Config) {
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"width":  cfg.Width,
		"height": cfg.Height,
		"mouse":  cfg.Mouse,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		payload["terminal"] = map[string]int{"width": w, "height": h}
	}
	events.App.Start(payload)
}
