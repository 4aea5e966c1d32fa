package game

import "fmt"

// kingOffsets lists the 8 neighbor steps in the canonical enumeration order.
// Every move and candidate scan walks this order so the bot is reproducible.
var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NewGame sets up a fresh position: A's token in the top-left corner, B's in
// the bottom-right, everything else Empty, A to move.
func NewGame(rows, cols int) (State, error) {
	if rows < 1 || cols < 1 || (rows == 1 && cols == 1) {
		return State{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	b := NewBoard(rows, cols)
	posA := Coord{0, 0}
	posB := Coord{rows - 1, cols - 1}
	b.Cells[posA.R][posA.C] = TokenA
	b.Cells[posB.R][posB.C] = TokenB
	return State{Board: b, PosA: posA, PosB: posB, Mover: PlayerA}, nil
}

// LegalDestinations returns the Empty in-bounds 8-neighbors of the mover's
// token, in kingOffsets order.
func LegalDestinations(s State) []Coord {
	pos := s.Pos(s.Mover)
	var out []Coord
	for _, d := range kingOffsets {
		c := Coord{pos.R + d[0], pos.C + d[1]}
		if s.Board.InBounds(c) && s.Board.at(c) == Empty {
			out = append(out, c)
		}
	}
	return out
}

// IsBlocked reports whether the side to move has no legal destination. It is
// the sole terminal-condition test, evaluated at the start of a turn.
func IsBlocked(s State) bool {
	return len(LegalDestinations(s)) == 0
}

// LegalObstacles returns, in row-major order, every cell that is Empty once
// the mover's token has stepped from its current square onto dest. The vacated
// square qualifies; dest itself never does.
func LegalObstacles(s State, dest Coord) []Coord {
	origin := s.Pos(s.Mover)
	var out []Coord
	for r := 0; r < s.Board.Rows; r++ {
		for c := 0; c < s.Board.Cols; c++ {
			cd := Coord{r, c}
			if cd == dest {
				continue
			}
			if cd == origin || s.Board.at(cd) == Empty {
				out = append(out, cd)
			}
		}
	}
	return out
}

// ResolveBlocked applies the side-to-move terminal check: if the mover has no
// legal destination the opponent wins immediately. Already-finished states
// pass through unchanged.
func ResolveBlocked(s State) State {
	if s.Status == InProgress && IsBlocked(s) {
		s.Status = wonBy(s.Mover.Opponent())
	}
	return s
}

// ApplyTurn validates t and plays it for the side to move, returning the
// resulting state. It fails without any effect on ErrGameOver or
// ErrIllegalMove; on success the turn has fully happened: token moved,
// obstacle sealed, side flipped, ply counted, and the incoming side checked
// for being blocked.
func ApplyTurn(s State, t Turn) (State, error) {
	if s.Status != InProgress {
		return s, ErrGameOver
	}
	if !legalDestination(s, t.Dest) {
		return s, fmt.Errorf("%w: destination (%d,%d)", ErrIllegalMove, t.Dest.R, t.Dest.C)
	}
	if !legalObstacle(s, t.Dest, t.Obstacle) {
		return s, fmt.Errorf("%w: obstacle (%d,%d)", ErrIllegalMove, t.Obstacle.R, t.Obstacle.C)
	}

	origin := s.Pos(s.Mover)
	ns := s
	ns.Board = s.Board.WithTokenMoved(origin, t.Dest).WithObstaclePlaced(t.Obstacle)
	if s.Mover == PlayerA {
		ns.PosA = t.Dest
	} else {
		ns.PosB = t.Dest
	}
	ns.Mover = s.Mover.Opponent()
	ns.Ply = s.Ply + 1
	return ResolveBlocked(ns), nil
}

func legalDestination(s State, dest Coord) bool {
	pos := s.Pos(s.Mover)
	if !s.Board.InBounds(dest) || s.Board.at(dest) != Empty {
		return false
	}
	return chebyshev(pos, dest) == 1
}

func legalObstacle(s State, dest, obs Coord) bool {
	if !s.Board.InBounds(obs) || obs == dest {
		return false
	}
	return obs == s.Pos(s.Mover) || s.Board.at(obs) == Empty
}
