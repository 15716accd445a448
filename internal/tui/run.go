package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/lifeone/internal/model"
)

// Config holds what Run needs. Input and Output default to the terminal.
type Config struct {
	Processor Processor
	Input     io.Reader
	Output    io.Writer
	Snapshot  model.Snapshot
	AltScreen bool
}

// Run starts the program and blocks until the user quits or ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Processor == nil {
		return fmt.Errorf("tui: processor is required")
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.Input != nil {
		opts = append(opts, tea.WithInput(cfg.Input))
	}
	if cfg.Output != nil {
		opts = append(opts, tea.WithOutput(cfg.Output))
	}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(New(ctx, cfg.Processor, cfg.Snapshot), opts...).Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
