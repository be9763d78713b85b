package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/metalagman/todolist/internal/config"
)

// loadConfig reads the config file named by --config. The default path may be absent;
// an explicitly passed one must exist.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path := viper.GetString("config")
	if path == "" {
		path = defaultConfigPath
	}
	required := false
	if f := cmd.Flags().Lookup("config"); f != nil {
		required = f.Changed
	}
	return config.Load(viper.New(), path, required)
}
