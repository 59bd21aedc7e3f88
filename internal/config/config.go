// Package config provides YAML-based configuration loading for the
// mastermind terminal game.
//
// Configuration only supplies defaults. Command-line flags override it,
// and whatever survives the merge is clamped to the engine bounds by the
// command layer, never here.
package config

// Config contains everything the shells read at startup.
type Config struct {
	Game GameSettings `yaml:"game"`
	UI   UISettings   `yaml:"ui"`
}

// GameSettings defines the default board parameters.
type GameSettings struct {
	Colors int `yaml:"colors"` // peg values run from 0 to colors-1
	Tries  int `yaml:"tries"`  // guesses allowed per game
}

// UISettings defines rendering preferences for the full-screen board.
type UISettings struct {
	UnicodePegs bool `yaml:"unicode_pegs"` // draw pegs as colored dots instead of digits
	ShowPalette bool `yaml:"show_palette"` // show the value-to-color legend under the board
}
