package game

import "blockade/internal/config"

// scoreWin is the sentinel for a turn that ends the game in the mover's
// favor. It exceeds any achievable weighted sum, so a winning turn is always
// preferred over every heuristic score.
const scoreWin = 1 << 30

// chebyshev is the king-move distance: max(|dr|, |dc|).
func chebyshev(a, b Coord) int {
	dr := a.R - b.R
	if dr < 0 {
		dr = -dr
	}
	dc := a.C - b.C
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}

// emptyNeighbors counts the Empty in-bounds 8-neighbors of c.
func emptyNeighbors(b Board, c Coord) int {
	n := 0
	for _, d := range kingOffsets {
		nc := Coord{c.R + d[0], c.C + d[1]}
		if b.InBounds(nc) && b.at(nc) == Empty {
			n++
		}
	}
	return n
}

// ScoreTurn rates the position s that resulted from mover playing t. All
// arithmetic is integer so equal candidates compare exactly and the selector's
// tie-break is reproducible on any platform.
//
// Five terms, from the mover's perspective:
//   - own mobility up, opponent mobility down (weighted empty-neighbor counts)
//   - closer to the opponent is better (easier to cut off)
//   - an obstacle sealed directly next to the opponent is worth a bonus
//   - a mild pull toward the board center
func ScoreTurn(s State, t Turn, mover Player, w config.Weights) int {
	if s.Status == wonBy(mover) {
		return scoreWin
	}
	me := s.Pos(mover)
	opp := s.Pos(mover.Opponent())

	score := w.Mobility*emptyNeighbors(s.Board, me) - w.OppMobility*emptyNeighbors(s.Board, opp)
	score -= w.Proximity * chebyshev(me, opp)
	if chebyshev(t.Obstacle, opp) == 1 {
		score += w.Cutoff
	}
	center := Coord{(s.Board.Rows - 1) / 2, (s.Board.Cols - 1) / 2}
	score -= w.Center * chebyshev(me, center)
	return score
}
