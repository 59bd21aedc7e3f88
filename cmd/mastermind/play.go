package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/termgames/mastermind/internal/config"
	"github.com/termgames/mastermind/internal/game"
)

var (
	flagColors int
	flagTries  int
	flagConfig string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in plain console mode",
	Long: `Play Mastermind as a plain line-based console game.

Each turn you type 4 numbers separated by whitespace. Black keys count
pegs that match the hidden code in both color and position, white keys
count pegs of the right color in the wrong position.

Examples:
  mastermind play
  mastermind play -c 6           # 6 colors instead of 8
  mastermind play -t 12          # 12 turns instead of 10
  mastermind play --seed 42      # Reproducible hidden code
  mastermind play --config ./my-mastermind.yaml`,
	Run: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the game settings shared by play, tui and serve.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&flagColors, "colors", "c", game.DefaultColors, "Number of peg colors (2-10)")
	cmd.Flags().IntVarP(&flagTries, "tries", "t", game.DefaultTries, "Number of turns allowed (minimum 2)")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

// resolveSettings merges the config file with command line overrides and
// clamps the result to the supported ranges. Clamp warnings go to warn so
// the full-screen commands can keep stdout clean for the UI.
func resolveSettings(cmd *cobra.Command, warn io.Writer) (game.Config, config.UISettings) {
	fileCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	colors := fileCfg.Game.Colors
	tries := fileCfg.Game.Tries

	// Command line flags win over the config file
	if cmd.Flags().Changed("colors") {
		colors = flagColors
	}
	if cmd.Flags().Changed("tries") {
		tries = flagTries
	}

	if colors > game.MaxColors {
		fmt.Fprintf(warn, "Wrong number of colors, set to %d\n", game.MaxColors)
		colors = game.MaxColors
	}
	if colors < game.MinColors {
		fmt.Fprintf(warn, "Wrong number of colors, set to %d\n", game.MinColors)
		colors = game.MinColors
	}
	if tries < game.MinTries {
		fmt.Fprintf(warn, "Wrong turns, set to %d\n", game.MinTries)
		tries = game.MinTries
	}

	return game.Config{Colors: colors, Tries: tries, Seed: flagSeed}, fileCfg.UI
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, _ := resolveSettings(cmd, os.Stdout)
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g := game.New(cfg)

	fmt.Printf("The game is starting. You can try %d turns to guess the %d hidden numbers.\n",
		g.Tries(), game.PegSlots)
	fmt.Printf("Each hidden number is from 0 to %d.\n", g.Colors()-1)

	scanner := bufio.NewScanner(os.Stdin)
	for g.TurnsLeft() > 0 {
		fmt.Printf("Please input %d numbers[0 -- %d] separated by whitespace: ",
			game.PegSlots, g.Colors()-1)

		if !scanner.Scan() {
			// End of input, give up quietly
			fmt.Println()
			return
		}

		pegs, err := game.ParseCode(scanner.Text())
		if err != nil {
			// A malformed line costs no turn
			fmt.Println(err)
			continue
		}

		black, white, won := g.Guess(pegs)
		if won {
			fmt.Println("Congratulations! You win!")
			return
		}
		fmt.Printf("Black keys: %d, White keys: %d\n", black, white)
	}

	fmt.Println("Sorry! You lost!")
	fmt.Printf("The hidden pegs: %s\n", g.Reveal())
}
