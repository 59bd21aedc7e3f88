package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/termgames/mastermind/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config YAML",
	Long: `Prints the built-in default configuration in YAML form.

Save and edit it to change the defaults for every game:

  mastermind config > ~/.mastermind/config.yaml`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	fmt.Print(string(config.DefaultYAML()))
}
