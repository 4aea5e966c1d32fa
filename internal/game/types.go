package game

// Cell is the content of a single board square.
type Cell int8

const (
	Empty Cell = iota
	TokenA
	TokenB
	Obstacle
)

// Player identifies one of the two sides. PlayerA moves first.
type Player int8

const (
	PlayerA Player = iota
	PlayerB
)

func (p Player) Opponent() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

// Token returns the cell value that marks this player's piece.
func (p Player) Token() Cell {
	if p == PlayerA {
		return TokenA
	}
	return TokenB
}

func (p Player) String() string {
	if p == PlayerA {
		return "A"
	}
	return "B"
}

// Coord addresses a board square by zero-based row and column.
type Coord struct {
	R int `json:"r"`
	C int `json:"c"`
}

// Status tracks whether the game is still running and who won it.
type Status int8

const (
	InProgress Status = iota
	AWon
	BWon
)

func (s Status) String() string {
	switch s {
	case AWon:
		return "A won"
	case BWon:
		return "B won"
	default:
		return "in progress"
	}
}

// wonBy maps a player to the status announcing their win.
func wonBy(p Player) Status {
	if p == PlayerA {
		return AWon
	}
	return BWon
}

// Turn is one complete action by the side to move: step the token onto Dest,
// then seal Obstacle permanently.
type Turn struct {
	Dest     Coord `json:"dest"`
	Obstacle Coord `json:"obstacle"`
}

// State is the full game position. It is a value: ApplyTurn returns a new
// State and never touches its input, so a failed turn leaves the caller's
// state untouched.
type State struct {
	Board  Board  `json:"board"`
	PosA   Coord  `json:"posA"`
	PosB   Coord  `json:"posB"`
	Mover  Player `json:"mover"`
	Ply    int    `json:"ply"`
	Status Status `json:"status"`
}

// Pos returns the coordinate of p's token.
func (s State) Pos(p Player) Coord {
	if p == PlayerA {
		return s.PosA
	}
	return s.PosB
}
