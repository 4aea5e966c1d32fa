package game

import "errors"

var (
	// ErrOutOfBounds is returned for coordinates outside the board extent.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrIllegalMove is returned when a destination or obstacle fails the
	// legality rules. The state is left unchanged.
	ErrIllegalMove = errors.New("illegal move")
	// ErrGameOver is returned for any mutation attempted after the game ended.
	ErrGameOver = errors.New("game is over")
	// ErrInvalidDimensions is returned by NewGame for unplayable board sizes.
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	// ErrNoMoves is returned by ChooseTurn when the side to move is blocked.
	ErrNoMoves = errors.New("no legal moves available")
)
