package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/metalagman/todolist/internal/config"
	"github.com/metalagman/todolist/internal/logging"
)

const (
	defaultConfigPath = "todolist.yaml"
	dotEnvPath        = ".env"
	debugLogPath      = "todolist.log"
)

// version is set at build time.
var version = "dev"

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var logs logFiles
	defer logs.Close()
	return newRootCmd(&logs).ExecuteContext(ctx)
}

// logFiles collects log files opened for a command run. The owner closes them after
// Execute returns, which also covers runs that fail.
type logFiles struct {
	files []io.Closer
}

func (l *logFiles) add(c io.Closer) {
	l.files = append(l.files, c)
}

// Close closes every collected file.
func (l *logFiles) Close() {
	for _, f := range l.files {
		_ = f.Close()
	}
	l.files = nil
}

func newRootCmd(logs *logFiles) *cobra.Command {
	var (
		cfgFile string
		debug   bool
	)
	cmd := &cobra.Command{
		Use:           "todolist",
		Short:         "todolist is a filterable to-do list with terminal, web and MCP front ends",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(dotEnvPath); err != nil {
				return err
			}
			w, err := logWriter(cmd, debug)
			if err != nil {
				return err
			}
			if f, ok := w.(*os.File); ok && f != os.Stderr {
				logs.add(f)
			}
			logging.InitWriter(debug, w)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigPath, "config file path")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	if err := viper.BindPFlag("config", cmd.PersistentFlags().Lookup("config")); err != nil {
		panic(fmt.Sprintf("bind config flag: %v", err))
	}

	cmd.AddCommand(tuiCmd())
	cmd.AddCommand(serveCmd())
	cmd.AddCommand(mcpCmd())
	cmd.AddCommand(replayCmd())
	cmd.AddCommand(initCmd())
	return cmd
}

// ownsTerminal is set on commands whose stdio carries the UI or a protocol.
const ownsTerminal = "owns-terminal"

// logWriter picks the log destination. Commands that own the terminal stay silent unless
// debugging: the TUI then logs to a file, the MCP server to stderr.
func logWriter(cmd *cobra.Command, debug bool) (io.Writer, error) {
	mode, owns := cmd.Annotations[ownsTerminal]
	if !owns {
		return cmd.ErrOrStderr(), nil
	}
	if !debug {
		return nil, nil
	}
	if mode == "stderr" {
		return cmd.ErrOrStderr(), nil
	}
	f, err := os.OpenFile(debugLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return f, nil
}
