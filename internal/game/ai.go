package game

import (
	"math"

	"blockade/internal/config"
)

// ChooseTurn picks the bot's turn for the side to move: it tries every legal
// destination in kingOffsets order, every legal obstacle for it in row-major
// order, scores the resulting position, and keeps the first strictly best
// pair. The fixed enumeration order plus integer scores make the choice
// identical for identical positions, every time.
//
// Note every destination admits at least one obstacle (the vacated origin),
// so a non-blocked mover always gets a turn back.
func ChooseTurn(s State, w config.Weights) (Turn, error) {
	if s.Status != InProgress {
		return Turn{}, ErrGameOver
	}
	dests := LegalDestinations(s)
	if len(dests) == 0 {
		return Turn{}, ErrNoMoves
	}

	var best Turn
	bestScore := math.MinInt
	for _, d := range dests {
		for _, o := range LegalObstacles(s, d) {
			t := Turn{Dest: d, Obstacle: o}
			next, err := ApplyTurn(s, t)
			if err != nil {
				return Turn{}, err
			}
			if sc := ScoreTurn(next, t, s.Mover, w); sc > bestScore {
				bestScore = sc
				best = t
			}
		}
	}
	return best, nil
}
