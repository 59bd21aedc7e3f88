// Package game implements the Mastermind rules: secret generation, guess
// scoring, and the turn counter. It knows nothing about terminals or
// configuration files, so the rules stay pure and testable.
//
// The engine trusts its callers. Config values are used as given and guesses
// are scored as given; clamping out-of-range settings and rejecting malformed
// input is the shell's job.
package game

import "math/rand"

// Board dimensions and configuration bounds. Shells clamp user-supplied
// settings to these bounds before constructing a Game.
const (
	PegSlots  = 4 // pegs per code
	MinColors = 2
	MaxColors = 10
	MinTries  = 2

	DefaultColors = 8
	DefaultTries  = 10
)

// Status represents the lifecycle of a game session.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Config fixes the parameters of one game session.
type Config struct {
	Colors int   // peg values are drawn from [0, Colors)
	Tries  int   // guesses allowed before the game is lost
	Seed   int64 // seed for this game's random source
}

// DefaultConfig returns the classic 8-color, 10-try setup.
func DefaultConfig() Config {
	return Config{Colors: DefaultColors, Tries: DefaultTries}
}

// Game holds the secret code and the remaining-turns counter for one
// session. Each Game owns its random source; instances never share
// generator state.
type Game struct {
	colors int
	tries  int
	left   int
	secret Code
	won    bool
	rng    *rand.Rand
}

// New creates a game and draws the secret: PegSlots values, each uniform
// over [0, cfg.Colors). Repeated values are allowed.
func New(cfg Config) *Game {
	g := &Game{
		colors: cfg.Colors,
		tries:  cfg.Tries,
		left:   cfg.Tries,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
	for i := range g.secret {
		g.secret[i] = g.rng.Intn(g.colors)
	}
	return g
}

// Guess scores pegs against the secret and consumes a turn. The turn is
// consumed no matter what the guess contains, winning guesses included.
// Values outside [0, Colors) are legal input; they simply never match.
//
// The engine does not refuse guesses after the game is decided. Callers
// are expected to stop the loop themselves once won is true or TurnsLeft
// reaches zero.
func (g *Game) Guess(pegs Code) (black, white int, won bool) {
	g.left--
	black, white = Score(g.secret, pegs)
	if black == PegSlots {
		g.won = true
	}
	return black, white, black == PegSlots
}

// TurnsLeft returns the number of guesses remaining. It can go negative
// when a caller keeps guessing past a lost game.
func (g *Game) TurnsLeft() int {
	return g.left
}

// Reveal returns the secret code. Meant for end-of-game disclosure;
// nothing here checks that the game is actually over.
func (g *Game) Reveal() Code {
	return g.secret
}

// Colors returns the number of peg colors in play.
func (g *Game) Colors() int {
	return g.colors
}

// Tries returns the total number of guesses this game allows.
func (g *Game) Tries() int {
	return g.tries
}

// Status derives the session state: a winning guess makes it Won, an
// exhausted counter without a win makes it Lost.
func (g *Game) Status() Status {
	switch {
	case g.won:
		return StatusWon
	case g.left <= 0:
		return StatusLost
	default:
		return StatusInProgress
	}
}

// Snapshot captures the observable state for rendering and logging.
// The secret is deliberately not part of it.
type Snapshot struct {
	Colors    int
	Tries     int
	TurnsLeft int
	Status    Status
}

// Snapshot returns the current observable state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Colors:    g.colors,
		Tries:     g.tries,
		TurnsLeft: g.left,
		Status:    g.Status(),
	}
}
