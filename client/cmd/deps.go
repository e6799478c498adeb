package cmd

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"time-tracker/client/adapters/api"
	"time-tracker/client/config"
	"time-tracker/client/core"
	"time-tracker/client/tui"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	Now      func() time.Time
	Location *time.Location

	ConfigPath func() (string, error)
	NewTracker func(cfg config.Config, log *slog.Logger) (core.Tracker, error)
	RunTUI     func(tr core.Tracker, cfg config.Config) error
	Copy       func(text string) error
}

// DefaultDeps returns the production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Stdin:      os.Stdin,
		Now:        time.Now,
		Location:   time.Local,
		ConfigPath: config.Path,
		NewTracker: newAPITracker,
		RunTUI:     runTUI,
		Copy:       clipboard.WriteAll,
	}
}

func newAPITracker(cfg config.Config, log *slog.Logger) (core.Tracker, error) {
	return api.NewClient(cfg.ServerURL, cfg.Timeout.Duration, log)
}

func runTUI(tr core.Tracker, cfg config.Config) error {
	p := tea.NewProgram(tui.New(tr, tui.WithTimeout(cfg.Timeout.Duration)), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
