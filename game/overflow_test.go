package game

import (
	"testing"

	"chainreaction/queue"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestResolve(t *testing.T) {
	t.Run("corner cell spills into both neighbors", func(t *testing.T) {
		grid := MustFromRows([][]int{{2, 0}, {0, -1}})
		sink := queue.New[Grid](0)

		steps := Resolve(grid, sink)

		require.Equal(t, 1, steps)
		require.Equal(t, Grid{{0, 1}, {1, -1}}, grid)
		require.Equal(t, 1, sink.Len(), "One snapshot per step")
	})

	t.Run("interior cell spills into four neighbors", func(t *testing.T) {
		grid := MustFromRows([][]int{{0, 0, 0}, {0, 4, 0}, {0, 0, -1}})
		sink := queue.New[Grid](0)

		steps := Resolve(grid, sink)

		require.Equal(t, 1, steps, "Edge cells holding 1 stay below capacity")
		require.Equal(t, Grid{{0, 1, 0}, {1, 0, 1}, {0, 1, -1}}, grid)
	})

	t.Run("single owner boards are never spilled", func(t *testing.T) {
		corner := MustFromRows([][]int{{2, 0}, {0, 0}})
		interior := MustFromRows([][]int{{0, 0, 0}, {0, 4, 0}, {0, 0, 0}})

		require.Equal(t, 0, Resolve(corner, nil))
		require.Equal(t, 0, Resolve(interior, nil))
		require.Equal(t, Grid{{2, 0}, {0, 0}}, corner)
		require.Equal(t, Grid{{0, 0, 0}, {0, 4, 0}, {0, 0, 0}}, interior)
	})

	t.Run("stable grid takes no steps", func(t *testing.T) {
		grid := MustFromRows([][]int{{1, 0}, {0, -1}})
		sink := queue.New[Grid](0)

		steps := Resolve(grid, sink)

		require.Equal(t, 0, steps)
		require.True(t, sink.IsEmpty(), "No snapshot without a step")
		require.Equal(t, Grid{{1, 0}, {0, -1}}, grid)
	})

	t.Run("captured neighbors change sign and keep their charge", func(t *testing.T) {
		grid := MustFromRows([][]int{{2, -1, 0}, {0, 0, -1}})

		steps := Resolve(grid, nil)

		require.Equal(t, 1, steps)
		require.Equal(t, Grid{{0, 2, 0}, {1, 0, -1}}, grid)
	})

	t.Run("shared neighbor gains once per source", func(t *testing.T) {
		grid := MustFromRows([][]int{{2, 0, 2}, {0, -1, 0}})

		steps := Resolve(grid, Discard)

		require.Equal(t, 1, steps)
		require.Equal(t, Grid{{0, 2, 0}, {1, -1, 1}}, grid)
	})

	t.Run("chain reaction records every intermediate grid", func(t *testing.T) {
		grid := MustFromRows([][]int{{2, 1}, {0, -1}})
		sink := queue.New[Grid](0)

		steps := Resolve(grid, sink)

		require.Equal(t, 2, steps)
		require.Equal(t, []Grid{
			{{0, 2}, {1, -1}},
			{{1, 0}, {1, 2}},
		}, sink.Drain())
		require.Equal(t, Grid{{1, 0}, {1, 2}}, grid)
	})

	t.Run("stops once one player owns the board", func(t *testing.T) {
		grid := MustFromRows([][]int{{2, -1}, {0, 0}})

		steps := Resolve(grid, nil)

		require.Equal(t, 1, steps)
		require.Equal(t, Grid{{0, 2}, {1, 0}}, grid)
		require.NotEmpty(t, grid.Overflowing(), "Overflow is left unresolved after domination")
	})

	t.Run("overflow on an already dominated board is left alone", func(t *testing.T) {
		grid := MustFromRows([][]int{{3, 0}, {0, 0}})

		steps := Resolve(grid, nil)

		require.Equal(t, 0, steps)
		require.Equal(t, Grid{{3, 0}, {0, 0}}, grid)
	})

	t.Run("snapshots are independent of the live grid", func(t *testing.T) {
		grid := MustFromRows([][]int{{2, 1}, {0, -1}})
		sink := queue.New[Grid](0)

		Resolve(grid, sink)
		grid[0][0] = 42

		first, err := sink.Dequeue()
		require.NoError(t, err)
		require.Equal(t, 0, first[0][0])
	})
}

func TestResolveLimit(t *testing.T) {
	t.Run("stops with an error at the step limit", func(t *testing.T) {
		grid := MustFromRows([][]int{{2, 1}, {0, -1}})

		steps, err := ResolveLimit(grid, nil, 1)

		require.ErrorIs(t, err, ErrCascadeLimit)
		require.Equal(t, 1, steps)
		require.Equal(t, Grid{{0, 2}, {1, -1}}, grid)
	})

	t.Run("settling within the limit is not an error", func(t *testing.T) {
		grid := MustFromRows([][]int{{2, 1}, {0, -1}})

		steps, err := ResolveLimit(grid, nil, 2)

		require.NoError(t, err)
		require.Equal(t, 2, steps)
	})
}

// Plays random legal moves and checks that every cascade settles, reports one
// snapshot per step and leaves the grid stable or dominated.
func TestResolveRandomPlay(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		board, err := NewBoard(4, 5)
		require.NoError(t, err)

		player := PlayerOne
		for turn := 0; turn < 200 && board.Winner() == 0; turn++ {
			grid := board.Grid()
			moves := []Position{}
			for r := range grid {
				for c := range grid[r] {
					if board.ValidMove(Position{r, c}, player) {
						moves = append(moves, Position{r, c})
					}
				}
			}
			require.NotEmpty(t, moves)
			require.True(t, board.AddPiece(moves[rng.Intn(len(moves))], player))

			live := board.grid
			sink := queue.New[Grid](0)
			steps, err := ResolveLimit(live, sink, 10000)

			require.NoError(t, err, "Cascade should settle (seed %d, turn %d)", seed, turn)
			require.Equal(t, steps, sink.Len(), "Step count should match snapshots pushed")
			require.True(t, len(live.Overflowing()) == 0 || live.SameSign(),
				"Grid should be stable or dominated (seed %d, turn %d)", seed, turn)

			player = Opponent(player)
		}
	}
}
