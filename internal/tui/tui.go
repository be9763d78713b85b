// Package tui provides the interactive terminal rendering of the task list.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/metalagman/todolist/internal/config"
	"github.com/metalagman/todolist/internal/todo"
)

// Run starts the terminal UI and blocks until the user quits or ctx is done.
func Run(ctx context.Context, cfg config.Config) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	model := New(todo.WithFilter(cfg.DefaultFilter))

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.TUI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(model, opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
