package main

import (
	"github.com/spf13/cobra"

	"github.com/metalagman/todolist/internal/mcpserver"
	"github.com/metalagman/todolist/internal/todo"
)

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "mcp",
		Short:       "Serve the list as MCP tools over stdio",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{ownsTerminal: "stderr"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return mcpserver.New(version, todo.WithFilter(cfg.DefaultFilter)).Run(cmd.Context())
		},
	}
}
