package game

import (
	"math/rand"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		secret Code
		guess  Code
		black  int
		white  int
	}{
		{
			name:   "all exact",
			secret: Code{1, 2, 3, 4},
			guess:  Code{1, 2, 3, 4},
			black:  4,
			white:  0,
		},
		{
			name:   "all misplaced",
			secret: Code{1, 2, 3, 4},
			guess:  Code{4, 3, 2, 1},
			black:  0,
			white:  4,
		},
		{
			name:   "no overlap",
			secret: Code{1, 2, 3, 4},
			guess:  Code{5, 6, 7, 0},
			black:  0,
			white:  0,
		},
		{
			name:   "mixed exact and misplaced",
			secret: Code{1, 2, 3, 4},
			guess:  Code{1, 3, 2, 4},
			black:  2,
			white:  2,
		},
		{
			name:   "duplicates swap positions",
			secret: Code{1, 1, 2, 2},
			guess:  Code{1, 2, 1, 2},
			black:  2,
			white:  2,
		},
		{
			name:   "guess repeats a single secret peg",
			secret: Code{1, 2, 3, 4},
			guess:  Code{1, 1, 1, 1},
			black:  1,
			white:  0,
		},
		{
			name:   "secret repeats a single guess value",
			secret: Code{1, 1, 1, 1},
			guess:  Code{1, 1, 2, 2},
			black:  2,
			white:  0,
		},
		{
			name:   "duplicate guess pegs share one secret peg",
			secret: Code{1, 2, 3, 4},
			guess:  Code{2, 5, 2, 5},
			black:  0,
			white:  1,
		},
		{
			name:   "duplicate secret pegs share one guess peg",
			secret: Code{2, 2, 3, 3},
			guess:  Code{3, 5, 5, 5},
			black:  0,
			white:  1,
		},
		{
			name:   "exact match consumes the only copy",
			secret: Code{1, 2, 3, 4},
			guess:  Code{1, 1, 5, 5},
			black:  1,
			white:  0,
		},
		{
			name:   "all same secret all same guess",
			secret: Code{7, 7, 7, 7},
			guess:  Code{7, 7, 7, 7},
			black:  4,
			white:  0,
		},
		{
			name:   "out of range pegs never match",
			secret: Code{0, 1, 2, 3},
			guess:  Code{99, -1, 2, 3},
			black:  2,
			white:  0,
		},
		{
			name:   "white claims leftmost unclaimed copy",
			secret: Code{5, 0, 5, 1},
			guess:  Code{0, 5, 1, 5},
			black:  0,
			white:  4,
		},
		{
			name:   "three misplaced one wrong",
			secret: Code{0, 1, 2, 3},
			guess:  Code{3, 0, 1, 9},
			black:  0,
			white:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			black, white := Score(tt.secret, tt.guess)
			if black != tt.black || white != tt.white {
				t.Errorf("Score(%v, %v) = (%d, %d), want (%d, %d)",
					tt.secret, tt.guess, black, white, tt.black, tt.white)
			}
		})
	}
}

func TestScoreExactBeforeColorOnly(t *testing.T) {
	// The 2 at guess position 3 is an exact match and must be claimed
	// before the 2 at guess position 0 looks for a color-only home.
	secret := Code{1, 1, 1, 2}
	guess := Code{2, 3, 3, 2}

	black, white := Score(secret, guess)
	if black != 1 || white != 0 {
		t.Errorf("Score = (%d, %d), want (1, 0)", black, white)
	}
}

func TestScoreKeyTotalNeverExceedsSlots(t *testing.T) {
	// Sweep random pairs and check the structural bounds hold.
	rng := rand.New(rand.NewSource(1))
	for range 1000 {
		var secret, guess Code
		for i := range secret {
			secret[i] = rng.Intn(MaxColors)
			guess[i] = rng.Intn(MaxColors)
		}
		black, white := Score(secret, guess)
		if black < 0 || white < 0 || black+white > PegSlots {
			t.Fatalf("Score(%v, %v) = (%d, %d), out of bounds", secret, guess, black, white)
		}
	}
}

func TestScoreSymmetric(t *testing.T) {
	// Swapping secret and guess must not change the key counts.
	rng := rand.New(rand.NewSource(2))
	for range 1000 {
		var a, b Code
		for i := range a {
			a[i] = rng.Intn(MaxColors)
			b[i] = rng.Intn(MaxColors)
		}
		ab, aw := Score(a, b)
		bb, bw := Score(b, a)
		if ab != bb || aw != bw {
			t.Fatalf("Score(%v, %v) = (%d, %d) but Score(%v, %v) = (%d, %d)",
				a, b, ab, aw, b, a, bb, bw)
		}
	}
}
