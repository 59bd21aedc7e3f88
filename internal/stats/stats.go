// Package stats keeps an in-memory tally of the games played during the
// current session. Nothing is written to disk; results live exactly as
// long as the process.
package stats

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of one finished game.
type Result struct {
	ID        string    // unique per game, assigned on Record when empty
	Won       bool      // true if the code was cracked
	TurnsUsed int       // guesses consumed, winning guess included
	Colors    int       // colors the game was played with
	Tries     int       // guesses the game allowed
	When      time.Time // finish time, assigned on Record when zero
}

// Summary aggregates the recorded results.
type Summary struct {
	Games      int
	Wins       int
	Losses     int
	BestWin    int     // fewest turns across wins, 0 when there are none
	AvgTurns   float64 // mean turns used per game, 0 when empty
	LastPlayed time.Time
}

// Tally accumulates game results for one session. The zero value is ready
// to use. Not safe for concurrent use; every session owns its own Tally.
type Tally struct {
	results []Result
}

// Record adds a finished game and returns it with ID and When filled in.
func (t *Tally) Record(r Result) Result {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.When.IsZero() {
		r.When = time.Now()
	}
	t.results = append(t.results, r)
	return r
}

// Results returns a copy of the recorded games in the order they finished.
func (t *Tally) Results() []Result {
	out := make([]Result, len(t.results))
	copy(out, t.results)
	return out
}

// Summary computes the aggregate view of the session.
func (t *Tally) Summary() Summary {
	var sum Summary
	sum.Games = len(t.results)

	total := 0
	for _, r := range t.results {
		total += r.TurnsUsed
		if r.When.After(sum.LastPlayed) {
			sum.LastPlayed = r.When
		}
		if !r.Won {
			sum.Losses++
			continue
		}
		sum.Wins++
		if sum.BestWin == 0 || r.TurnsUsed < sum.BestWin {
			sum.BestWin = r.TurnsUsed
		}
	}

	if sum.Games > 0 {
		sum.AvgTurns = float64(total) / float64(sum.Games)
	}
	return sum
}
