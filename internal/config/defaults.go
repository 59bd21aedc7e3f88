package config

import (
	_ "embed"

	"github.com/termgames/mastermind/internal/game"
)

//go:embed defaults/mastermind.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration: the classic board
// with unicode rendering. Used when even the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Game: GameSettings{
			Colors: game.DefaultColors,
			Tries:  game.DefaultTries,
		},
		UI: UISettings{
			UnicodePegs: true,
			ShowPalette: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for writing starter
// config files.
func DefaultYAML() []byte {
	return defaultYAML
}
