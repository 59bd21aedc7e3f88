package game

// Score computes the black and white key counts for a guess. Black counts
// pegs that match the secret in both value and position; white counts
// further guess pegs whose value occurs at some other, still unclaimed
// secret position.
//
// Matching is greedy. Exact matches are claimed first, then each remaining
// guess peg scans the secret left to right and claims the first unclaimed
// peg with the same value. Every secret peg feeds at most one key and every
// guess peg earns at most one key, so black+white never exceeds PegSlots.
func Score(secret, guess Code) (black, white int) {
	var secretUsed, guessUsed [PegSlots]bool

	// Exact matches: value and position agree.
	for i := 0; i < PegSlots; i++ {
		if guess[i] == secret[i] {
			black++
			secretUsed[i] = true
			guessUsed[i] = true
		}
	}

	// Color-only matches among the leftovers.
	for i := 0; i < PegSlots; i++ {
		if guessUsed[i] {
			continue
		}
		for j := 0; j < PegSlots; j++ {
			if secretUsed[j] || secret[j] != guess[i] {
				continue
			}
			white++
			secretUsed[j] = true
			break
		}
	}

	return black, white
}
