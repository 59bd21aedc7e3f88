package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/termgames/mastermind/internal/platform/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in a full-screen terminal UI",
	Long: `Play Mastermind in a full-screen terminal UI.

The board shows every guess with colored pegs and its black/white keys.

Controls:
  Enter      - Submit a guess
  Tab        - Show the session tally
  N/R        - New game (after one has finished)
  Esc/Ctrl+C - Quit

Examples:
  mastermind tui
  mastermind tui -c 6 -t 12
  mastermind tui --config ./my-mastermind.yaml`,
	Run: runTUI,
}

func init() {
	addGameFlags(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) {
	cfg, ui := resolveSettings(cmd, os.Stderr)

	// Get terminal size before the program takes over the screen
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Colors:  cfg.Colors,
		Tries:   cfg.Tries,
		Seed:    cfg.Seed,
		UI:      ui,
		ScreenW: width,
		ScreenH: height,
	}

	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
