package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/termgames/mastermind/internal/game"
	"github.com/termgames/mastermind/internal/platform/tui"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Show the peg color legend",
	Long:  `Shows which color each peg number stands for in the full-screen UI.`,
	Run:   runColors,
}

func runColors(cmd *cobra.Command, args []string) {
	fmt.Println("Peg colors:")
	fmt.Println()

	for v := 0; v < game.MaxColors; v++ {
		fmt.Printf("  %d  %s  %s\n", v, tui.RenderPeg(v, true), tui.PegName(v))
	}

	fmt.Println()
	fmt.Printf("A game uses the first 2 to %d of them; pick how many with --colors.\n", game.MaxColors)
}
