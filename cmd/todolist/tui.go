package main

import (
	"github.com/spf13/cobra"

	"github.com/metalagman/todolist/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "tui",
		Short:       "Open the interactive terminal list",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{ownsTerminal: "file"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), cfg)
		},
	}
}
