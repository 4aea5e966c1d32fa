package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"blockade/internal/config"
)

func TestScoreTurn(t *testing.T) {
	w := config.DefaultWeights()

	t.Run("opening turn on 7x7", func(t *testing.T) {
		s, err := NewGame(7, 7)
		require.NoError(t, err)
		turn := Turn{Dest: Coord{1, 1}, Obstacle: Coord{0, 0}}
		ns, err := ApplyTurn(s, turn)
		require.NoError(t, err)

		// own mobility 7 (only (0,0) is sealed), opponent mobility 3,
		// Chebyshev distance to opponent 5, no cutoff, distance 2 to center:
		// 3*7 - 3*3 - 1*5 + 0 - 1*2 = 5
		require.Equal(t, 5, ScoreTurn(ns, turn, PlayerA, w))
	})

	t.Run("cutoff bonus for sealing next to the opponent", func(t *testing.T) {
		s, err := NewGame(7, 7)
		require.NoError(t, err)
		turn := Turn{Dest: Coord{1, 1}, Obstacle: Coord{5, 5}}
		ns, err := ApplyTurn(s, turn)
		require.NoError(t, err)

		// own mobility 8 (origin vacated and not sealed), opponent mobility 2:
		// 3*8 - 3*2 - 1*5 + 2 - 1*2 = 13
		require.Equal(t, 13, ScoreTurn(ns, turn, PlayerA, w))
	})

	t.Run("winning turn scores the sentinel", func(t *testing.T) {
		s := State{
			Board: NewBoard(1, 3),
			PosA:  Coord{0, 0},
			PosB:  Coord{0, 2},
			Mover: PlayerB,
		}
		s.Board.Cells[0][0] = TokenA
		s.Board.Cells[0][2] = TokenB

		turn := Turn{Dest: Coord{0, 1}, Obstacle: Coord{0, 2}}
		ns, err := ApplyTurn(s, turn)
		require.NoError(t, err)
		require.Equal(t, BWon, ns.Status)
		require.Equal(t, scoreWin, ScoreTurn(ns, turn, PlayerB, w))
	})
}

func TestChebyshev(t *testing.T) {
	cases := []struct {
		a, b Coord
		want int
	}{
		{Coord{0, 0}, Coord{0, 0}, 0},
		{Coord{0, 0}, Coord{1, 1}, 1},
		{Coord{2, 5}, Coord{4, 1}, 4},
		{Coord{6, 0}, Coord{0, 6}, 6},
	}
	for _, c := range cases {
		require.Equal(t, c.want, chebyshev(c.a, c.b))
		require.Equal(t, c.want, chebyshev(c.b, c.a))
	}
}
