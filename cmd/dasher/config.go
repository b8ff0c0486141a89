package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mkurnosov/dasher/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config YAML",
	Long: `Print the built-in default configuration to stdout.

Redirect it to a file, tweak the values, and pass it back with --config:

  dasher config > my-dasher.yaml
  dasher play --config ./my-dasher.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}
