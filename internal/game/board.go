package game

import "fmt"

// Board is a fixed-size grid of cells. Boards are values; the two With*
// transforms return a fresh copy, so no board a caller already holds is ever
// mutated. Cells never revert: the only Empty that ever reappears is the
// square a token vacates.
type Board struct {
	Rows  int      `json:"rows"`
	Cols  int      `json:"cols"`
	Cells [][]Cell `json:"cells"`
}

// NewBoard returns an all-Empty rows x cols board.
func NewBoard(rows, cols int) Board {
	c := make([][]Cell, rows)
	for i := range c {
		c[i] = make([]Cell, cols)
	}
	return Board{Rows: rows, Cols: cols, Cells: c}
}

// InBounds reports whether c lies on the board.
func (b Board) InBounds(c Coord) bool {
	return c.R >= 0 && c.R < b.Rows && c.C >= 0 && c.C < b.Cols
}

// CellAt returns the cell at c, or ErrOutOfBounds.
func (b Board) CellAt(c Coord) (Cell, error) {
	if !b.InBounds(c) {
		return Empty, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.R, c.C)
	}
	return b.Cells[c.R][c.C], nil
}

// at is the unchecked lookup for callers that already validated bounds.
func (b Board) at(c Coord) Cell {
	return b.Cells[c.R][c.C]
}

func (b Board) clone() Board {
	c := make([][]Cell, b.Rows)
	for i := range c {
		c[i] = append([]Cell(nil), b.Cells[i]...)
	}
	return Board{Rows: b.Rows, Cols: b.Cols, Cells: c}
}

// WithTokenMoved returns a board where from is vacated and to holds the token
// that stood on from. The caller guarantees from holds a token and to is
// Empty; the rules engine checks both before calling.
func (b Board) WithTokenMoved(from, to Coord) Board {
	nb := b.clone()
	nb.Cells[to.R][to.C] = nb.Cells[from.R][from.C]
	nb.Cells[from.R][from.C] = Empty
	return nb
}

// WithObstaclePlaced returns a board where c is sealed. The caller guarantees
// c is Empty.
func (b Board) WithObstaclePlaced(c Coord) Board {
	nb := b.clone()
	nb.Cells[c.R][c.C] = Obstacle
	return nb
}
