package engine

import "github.com/lgbarn/fenmove-go/internal/chess"

// disambiguate picks the origin square among the candidates.
//
// A single candidate is taken as is, even when it contradicts the hints.
// With several, the first candidate matching the column hint OR the rank
// hint wins. When nothing matches, the first candidate is taken instead of
// failing: callers rely on this lenient resolution.
func disambiguate(candidates []chess.Square, move *chess.Move) chess.Square {
	if len(candidates) == 1 {
		return candidates[0]
	}
	if sq, ok := matchHint(candidates, move); ok {
		return sq
	}
	return candidates[0]
}

// matchHint returns the first candidate on the hinted column or rank.
func matchHint(candidates []chess.Square, move *chess.Move) (chess.Square, bool) {
	for _, sq := range candidates {
		if move.FromCol != 0 && sq.Col == move.FromCol {
			return sq, true
		}
		if move.FromRank != 0 && sq.Rank == move.FromRank {
			return sq, true
		}
	}
	return chess.Square{}, false
}
