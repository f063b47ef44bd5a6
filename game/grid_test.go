package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGridCapacity(t *testing.T) {
	g := NewGrid(3, 4)

	t.Run("corners hold two", func(t *testing.T) {
		for _, p := range []Position{{0, 0}, {0, 3}, {2, 0}, {2, 3}} {
			require.Equal(t, 2, g.Capacity(p.Row, p.Col), "Corner %v should have capacity 2", p)
		}
	})

	t.Run("edges hold three", func(t *testing.T) {
		for _, p := range []Position{{0, 1}, {0, 2}, {1, 0}, {1, 3}, {2, 1}} {
			require.Equal(t, 3, g.Capacity(p.Row, p.Col), "Edge %v should have capacity 3", p)
		}
	})

	t.Run("interior holds four", func(t *testing.T) {
		require.Equal(t, 4, g.Capacity(1, 1))
		require.Equal(t, 4, g.Capacity(1, 2))
	})

	t.Run("capacity matches neighbor count", func(t *testing.T) {
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				require.Len(t, g.Neighbors(r, c), g.Capacity(r, c))
			}
		}
	})
}

func TestGridNeighbors(t *testing.T) {
	g := NewGrid(3, 3)

	require.Equal(t, []Position{{0, 1}, {2, 1}, {1, 0}, {1, 2}}, g.Neighbors(1, 1),
		"Neighbors should be listed up, down, left, right")
	require.Equal(t, []Position{{1, 0}, {0, 1}}, g.Neighbors(0, 0))
}

func TestGridFromRows(t *testing.T) {
	t.Run("copies rectangular input", func(t *testing.T) {
		rows := [][]int{{1, 0}, {0, -1}}
		g, err := FromRows(rows)

		require.NoError(t, err)
		rows[0][0] = 9
		require.Equal(t, 1, g[0][0], "Grid should not alias its input")
	})

	t.Run("rejects ragged input", func(t *testing.T) {
		_, err := FromRows([][]int{{1, 0}, {0}})
		require.ErrorIs(t, err, ErrShape)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := FromRows(nil)
		require.ErrorIs(t, err, ErrShape)

		_, err = FromRows([][]int{{}})
		require.ErrorIs(t, err, ErrShape)
	})
}

func TestGridCopy(t *testing.T) {
	g := MustFromRows([][]int{{1, 2}, {3, 4}})
	c := g.Copy()
	c[1][1] = -7

	require.Equal(t, 4, g[1][1], "Mutating a copy should not affect the original")
	require.False(t, g.Equal(c))
}

func TestGridOverflowing(t *testing.T) {
	g := MustFromRows([][]int{
		{2, 0, -3},
		{0, 3, 0},
		{-1, 0, 1},
	})

	require.Equal(t, []Position{{0, 0}, {0, 2}}, g.Overflowing(),
		"Only cells at or above capacity should overflow, in row-major order")
}

func TestGridSameSign(t *testing.T) {
	require.True(t, NewGrid(2, 2).SameSign(), "An empty grid has no competing signs")
	require.True(t, MustFromRows([][]int{{1, 0}, {0, 3}}).SameSign())
	require.True(t, MustFromRows([][]int{{-1, 0}, {-2, 0}}).SameSign())
	require.False(t, MustFromRows([][]int{{1, 0}, {0, -1}}).SameSign())
}

func TestGridString(t *testing.T) {
	g := MustFromRows([][]int{{1, -2}, {0, 3}})
	require.Equal(t, "  1  -2\n  0   3\n", g.String())
}
