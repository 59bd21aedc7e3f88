// mastermind is a console implementation of the classic code-breaking
// board game. The computer hides a code of four pegs, each peg a number
// standing in for a color, and the player has a limited number of turns
// to guess it.
//
// Usage:
//
//	mastermind play          - Play in plain console mode
//	mastermind tui           - Play in a full-screen terminal UI
//	mastermind serve         - Start SSH server for remote play
//	mastermind colors        - Show the peg color legend
//	mastermind config        - Print the default config YAML
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for a reproducible hidden code
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mastermind",
	Short: "Mastermind - break the hidden color code in your terminal",
	Long: `Mastermind is a terminal version of the classic code-breaking board game.
The computer hides a code of 4 numbered pegs and you guess it within a
limited number of turns. After every guess you get black keys for pegs
matching in both color and position, and white keys for pegs of the
right color in the wrong position.

Available commands:
  play     - Play in plain console mode
  tui      - Play in a full-screen terminal UI
  serve    - Start SSH server for remote play
  colors   - Show the peg color legend
  config   - Print the default config YAML

Examples:
  mastermind play
  mastermind play -c 6 -t 12
  mastermind tui
  mastermind serve --ssh :2222
  mastermind config > ~/.mastermind/config.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(configCmd)
}
