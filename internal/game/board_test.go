package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCellAt(t *testing.T) {
	b := NewBoard(3, 4)
	b.Cells[1][2] = Obstacle

	t.Run("in bounds", func(t *testing.T) {
		c, err := b.CellAt(Coord{1, 2})
		require.NoError(t, err)
		require.Equal(t, Obstacle, c)

		c, err = b.CellAt(Coord{0, 0})
		require.NoError(t, err)
		require.Equal(t, Empty, c)
	})

	t.Run("out of bounds", func(t *testing.T) {
		for _, bad := range []Coord{{-1, 0}, {0, -1}, {3, 0}, {0, 4}} {
			_, err := b.CellAt(bad)
			require.ErrorIs(t, err, ErrOutOfBounds, "coord %v", bad)
		}
	})
}

func TestBoardTransformsDoNotMutate(t *testing.T) {
	b := NewBoard(3, 3)
	b.Cells[0][0] = TokenA

	moved := b.WithTokenMoved(Coord{0, 0}, Coord{1, 1})
	require.Equal(t, TokenA, moved.Cells[1][1])
	require.Equal(t, Empty, moved.Cells[0][0])
	require.Equal(t, TokenA, b.Cells[0][0], "original board changed")
	require.Equal(t, Empty, b.Cells[1][1], "original board changed")

	sealed := moved.WithObstaclePlaced(Coord{2, 2})
	require.Equal(t, Obstacle, sealed.Cells[2][2])
	require.Equal(t, Empty, moved.Cells[2][2], "original board changed")
}
