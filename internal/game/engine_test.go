package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("standard board", func(t *testing.T) {
		s, err := NewGame(7, 7)
		require.NoError(t, err)
		require.Equal(t, Coord{0, 0}, s.PosA)
		require.Equal(t, Coord{6, 6}, s.PosB)
		require.Equal(t, PlayerA, s.Mover)
		require.Equal(t, 0, s.Ply)
		require.Equal(t, InProgress, s.Status)
		require.Equal(t, TokenA, s.Board.Cells[0][0])
		require.Equal(t, TokenB, s.Board.Cells[6][6])
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		for _, d := range [][2]int{{0, 7}, {7, 0}, {-1, 3}, {1, 1}} {
			_, err := NewGame(d[0], d[1])
			require.ErrorIs(t, err, ErrInvalidDimensions, "%dx%d", d[0], d[1])
		}
	})
}

func TestLegalDestinations(t *testing.T) {
	t.Run("corner start", func(t *testing.T) {
		s, err := NewGame(7, 7)
		require.NoError(t, err)
		require.Equal(t, []Coord{{0, 1}, {1, 0}, {1, 1}}, LegalDestinations(s))
	})

	t.Run("filters occupied and sealed cells", func(t *testing.T) {
		s, err := NewGame(2, 2)
		require.NoError(t, err)
		s.Board.Cells[0][1] = Obstacle
		// (1,1) holds B's token, so only (1,0) is left
		require.Equal(t, []Coord{{1, 0}}, LegalDestinations(s))
	})
}

func TestLegalObstacles(t *testing.T) {
	s, err := NewGame(7, 7)
	require.NoError(t, err)

	obs := LegalObstacles(s, Coord{1, 1})
	require.Len(t, obs, 47) // 47 empties once the token sits on (1,1)
	require.Contains(t, obs, Coord{0, 0}, "vacated origin must qualify")
	require.NotContains(t, obs, Coord{1, 1}, "destination never qualifies")
	require.NotContains(t, obs, Coord{6, 6}, "opponent token cell never qualifies")
}

func TestApplyTurn(t *testing.T) {
	t.Run("opening turn with obstacle on vacated origin", func(t *testing.T) {
		s, err := NewGame(7, 7)
		require.NoError(t, err)

		ns, err := ApplyTurn(s, Turn{Dest: Coord{1, 1}, Obstacle: Coord{0, 0}})
		require.NoError(t, err)
		require.Equal(t, Obstacle, ns.Board.Cells[0][0])
		require.Equal(t, TokenA, ns.Board.Cells[1][1])
		require.Equal(t, Coord{1, 1}, ns.PosA)
		require.Equal(t, PlayerB, ns.Mover)
		require.Equal(t, 1, ns.Ply)
		require.Equal(t, InProgress, ns.Status)
	})

	t.Run("illegal turns leave the state untouched", func(t *testing.T) {
		s, err := NewGame(7, 7)
		require.NoError(t, err)

		cases := map[string]Turn{
			"destination out of bounds":   {Dest: Coord{-1, 0}, Obstacle: Coord{3, 3}},
			"destination not adjacent":    {Dest: Coord{2, 2}, Obstacle: Coord{3, 3}},
			"destination is own cell":     {Dest: Coord{0, 0}, Obstacle: Coord{3, 3}},
			"obstacle equals destination": {Dest: Coord{1, 1}, Obstacle: Coord{1, 1}},
			"obstacle out of bounds":      {Dest: Coord{1, 1}, Obstacle: Coord{7, 7}},
			"obstacle on opponent token":  {Dest: Coord{1, 1}, Obstacle: Coord{6, 6}},
		}
		for name, turn := range cases {
			t.Run(name, func(t *testing.T) {
				got, err := ApplyTurn(s, turn)
				require.ErrorIs(t, err, ErrIllegalMove)
				require.Equal(t, s, got, "failed turn must not change the state")
			})
		}
	})

	t.Run("blocking the opponent wins immediately", func(t *testing.T) {
		// 1x3 strip, B to move: stepping next to A and A's only square gone.
		s := State{
			Board: NewBoard(1, 3),
			PosA:  Coord{0, 0},
			PosB:  Coord{0, 2},
			Mover: PlayerB,
		}
		s.Board.Cells[0][0] = TokenA
		s.Board.Cells[0][2] = TokenB

		ns, err := ApplyTurn(s, Turn{Dest: Coord{0, 1}, Obstacle: Coord{0, 2}})
		require.NoError(t, err)
		require.Equal(t, BWon, ns.Status)
		require.True(t, IsBlocked(ns))

		_, err = ApplyTurn(ns, Turn{Dest: Coord{0, 1}, Obstacle: Coord{0, 0}})
		require.ErrorIs(t, err, ErrGameOver)
	})
}

func TestResolveBlocked(t *testing.T) {
	t.Run("two-cell board is lost before the first turn", func(t *testing.T) {
		s, err := NewGame(1, 2)
		require.NoError(t, err)
		require.True(t, IsBlocked(s))

		s = ResolveBlocked(s)
		require.Equal(t, BWon, s.Status)
	})

	t.Run("walled-in token loses to the other side", func(t *testing.T) {
		s := State{
			Board: NewBoard(4, 4),
			PosA:  Coord{0, 0},
			PosB:  Coord{3, 3},
			Mover: PlayerA,
		}
		s.Board.Cells[0][0] = TokenA
		s.Board.Cells[3][3] = TokenB
		for _, c := range []Coord{{0, 1}, {1, 0}, {1, 1}} {
			s.Board.Cells[c.R][c.C] = Obstacle
		}
		require.True(t, IsBlocked(s))
		require.Equal(t, BWon, ResolveBlocked(s).Status)
	})

	t.Run("open position passes through", func(t *testing.T) {
		s, err := NewGame(7, 7)
		require.NoError(t, err)
		require.Equal(t, s, ResolveBlocked(s))
	})
}
