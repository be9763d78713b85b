package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/metalagman/todolist/internal/config"
	"github.com/metalagman/todolist/internal/render"
	"github.com/metalagman/todolist/internal/script"
	"github.com/metalagman/todolist/internal/todo"
)

const (
	formatMarkdown = "markdown"
	formatPlain    = "plain"
	formatJSON     = "json"
)

type replayResult struct {
	View    todo.View       `json:"view"`
	Notices []script.Notice `json:"notices"`
}

func replayCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay a YAML event script and print the resulting list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			ctrl := todo.NewController(todo.WithFilter(cfg.DefaultFilter))
			notices, err := script.Run(ctrl, s)
			if err != nil {
				return err
			}
			return writeReplay(cmd.OutOrStdout(), cmd.ErrOrStderr(), format, cfg.Render,
				replayResult{View: ctrl.View(), Notices: notices})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatMarkdown, "output format: markdown, plain or json")
	return cmd
}

func writeReplay(out, errOut io.Writer, format string, opts config.Render, res replayResult) error {
	if format == formatJSON {
		if res.Notices == nil {
			res.Notices = []script.Notice{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	for _, n := range res.Notices {
		fmt.Fprintf(errOut, "step %d: %s\n", n.Step, n.Message)
	}
	switch format {
	case formatMarkdown:
		text, err := render.Terminal(res.View, render.Options{Style: opts.Style, Width: opts.Width})
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, text)
		return err
	case formatPlain:
		_, err := io.WriteString(out, render.Plain(res.View))
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}
