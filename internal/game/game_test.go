package game

import "testing"

// missCode returns a guess that cannot score any keys: every peg is outside
// the color range.
func missCode(colors int) Code {
	return Code{colors, colors, colors, colors}
}

func TestGuessConsumesTurn(t *testing.T) {
	g := New(Config{Colors: 8, Tries: 10, Seed: 42})

	g.Guess(missCode(8))
	if got := g.TurnsLeft(); got != 9 {
		t.Errorf("TurnsLeft after one guess = %d, want 9", got)
	}

	// Winning guesses consume a turn too.
	g.Guess(g.Reveal())
	if got := g.TurnsLeft(); got != 8 {
		t.Errorf("TurnsLeft after winning guess = %d, want 8", got)
	}
}

func TestWinningGuess(t *testing.T) {
	g := New(Config{Colors: 8, Tries: 10, Seed: 7})

	black, white, won := g.Guess(g.Reveal())
	if !won {
		t.Error("guessing the secret should win")
	}
	if black != PegSlots || white != 0 {
		t.Errorf("winning guess keys = (%d, %d), want (%d, 0)", black, white, PegSlots)
	}
	if got := g.Status(); got != StatusWon {
		t.Errorf("Status = %v, want %v", got, StatusWon)
	}
}

func TestWinOnLastTurn(t *testing.T) {
	g := New(Config{Colors: 8, Tries: 2, Seed: 3})

	g.Guess(missCode(8))
	_, _, won := g.Guess(g.Reveal())

	if !won {
		t.Error("last-turn winning guess should win")
	}
	if got := g.TurnsLeft(); got != 0 {
		t.Errorf("TurnsLeft = %d, want 0", got)
	}
	// A win on the final turn is a win, not a loss.
	if got := g.Status(); got != StatusWon {
		t.Errorf("Status = %v, want %v", got, StatusWon)
	}
}

func TestLossWhenTriesExhausted(t *testing.T) {
	g := New(Config{Colors: 8, Tries: 2, Seed: 5})

	g.Guess(missCode(8))
	if got := g.Status(); got != StatusInProgress {
		t.Errorf("Status mid-game = %v, want %v", got, StatusInProgress)
	}

	g.Guess(missCode(8))
	if got := g.Status(); got != StatusLost {
		t.Errorf("Status = %v, want %v", got, StatusLost)
	}
	if got := g.TurnsLeft(); got != 0 {
		t.Errorf("TurnsLeft = %d, want 0", got)
	}

	// The engine does not stop a caller from guessing past the end;
	// the counter just keeps going down.
	g.Guess(missCode(8))
	if got := g.TurnsLeft(); got != -1 {
		t.Errorf("TurnsLeft after extra guess = %d, want -1", got)
	}
	if got := g.Status(); got != StatusLost {
		t.Errorf("Status after extra guess = %v, want %v", got, StatusLost)
	}
}

func TestStatusSticksAfterWin(t *testing.T) {
	g := New(Config{Colors: 8, Tries: 3, Seed: 11})

	g.Guess(g.Reveal())

	// Further guesses burn turns but cannot un-win the game.
	_, _, won := g.Guess(missCode(8))
	if won {
		t.Error("a missing guess should not report a win")
	}
	g.Guess(missCode(8))
	if got := g.TurnsLeft(); got != 0 {
		t.Errorf("TurnsLeft = %d, want 0", got)
	}
	if got := g.Status(); got != StatusWon {
		t.Errorf("Status = %v, want %v", got, StatusWon)
	}
}

func TestSameSeedSameSecret(t *testing.T) {
	cfg := Config{Colors: 8, Tries: 10, Seed: 12345}

	g1 := New(cfg)
	g2 := New(cfg)

	if g1.Reveal() != g2.Reveal() {
		t.Errorf("same seed should produce same secret: %v vs %v", g1.Reveal(), g2.Reveal())
	}

	// One game's secret wins the other.
	if _, _, won := g2.Guess(g1.Reveal()); !won {
		t.Error("secret from an identically seeded game should win")
	}
}

func TestSecretWithinRange(t *testing.T) {
	for colors := MinColors; colors <= MaxColors; colors++ {
		for seed := int64(1); seed <= 20; seed++ {
			g := New(Config{Colors: colors, Tries: 10, Seed: seed})
			for i, v := range g.Reveal() {
				if v < 0 || v >= colors {
					t.Fatalf("colors=%d seed=%d: secret peg %d = %d, want [0, %d)",
						colors, seed, i, v, colors)
				}
			}
		}
	}
}

func TestMinimumConfiguration(t *testing.T) {
	g := New(Config{Colors: MinColors, Tries: MinTries, Seed: 9})

	for _, v := range g.Reveal() {
		if v != 0 && v != 1 {
			t.Fatalf("two-color secret contains %d", v)
		}
	}

	// Two guesses exhaust the game one way or the other.
	g.Guess(Code{0, 0, 0, 0})
	g.Guess(Code{1, 1, 1, 1})
	if got := g.Status(); got == StatusInProgress {
		t.Errorf("Status after %d guesses = %v, want a terminal state", MinTries, got)
	}
}

func TestRevealIsStable(t *testing.T) {
	g := New(Config{Colors: 8, Tries: 10, Seed: 21})

	want := g.Reveal()
	g.Guess(Code{0, 1, 2, 3})
	g.Guess(missCode(8))

	if got := g.Reveal(); got != want {
		t.Errorf("Reveal changed mid-game: got %v, want %v", got, want)
	}
}

func TestSnapshot(t *testing.T) {
	g := New(Config{Colors: 6, Tries: 5, Seed: 42})
	g.Guess(missCode(6))

	snap := g.Snapshot()
	if snap.Colors != 6 {
		t.Errorf("Snapshot Colors = %d, want 6", snap.Colors)
	}
	if snap.Tries != 5 {
		t.Errorf("Snapshot Tries = %d, want 5", snap.Tries)
	}
	if snap.TurnsLeft != 4 {
		t.Errorf("Snapshot TurnsLeft = %d, want 4", snap.TurnsLeft)
	}
	if snap.Status != StatusInProgress {
		t.Errorf("Snapshot Status = %v, want %v", snap.Status, StatusInProgress)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Colors != DefaultColors {
		t.Errorf("DefaultConfig Colors = %d, want %d", cfg.Colors, DefaultColors)
	}
	if cfg.Tries != DefaultTries {
		t.Errorf("DefaultConfig Tries = %d, want %d", cfg.Tries, DefaultTries)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusInProgress, "in progress"},
		{StatusWon, "won"},
		{StatusLost, "lost"},
		{Status(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}
