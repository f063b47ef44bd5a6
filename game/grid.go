package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrShape = errors.New("grid must be rectangular and non-empty")

// Grid is a rectangular matrix of cells. The sign of a cell is its owner and the
// magnitude its charge; zero is an empty cell.
type Grid [][]int

// NewGrid returns an all-empty grid.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]int, cols)
	}
	return g
}

// FromRows copies rows into a new grid after checking it is rectangular.
func FromRows(rows [][]int) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrShape
	}
	cols := len(rows[0])
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), cols, ErrShape)
		}
	}
	return Grid(rows).Copy(), nil
}

// MustFromRows is FromRows for literals known to be well formed.
func MustFromRows(rows [][]int) Grid {
	g, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return g
}

func (g Grid) Rows() int {
	return len(g)
}

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < g.Cols()
}

// Copy returns a deep copy sharing no rows with g.
func (g Grid) Copy() Grid {
	c := make(Grid, len(g))
	for r, row := range g {
		c[r] = make([]int, len(row))
		copy(c[r], row)
	}
	return c
}

// Neighbors lists the orthogonal neighbors of a cell: up, down, left, right.
func (g Grid) Neighbors(row, col int) []Position {
	neighbors := make([]Position, 0, 4)
	if row > 0 {
		neighbors = append(neighbors, Position{row - 1, col})
	}
	if row < g.Rows()-1 {
		neighbors = append(neighbors, Position{row + 1, col})
	}
	if col > 0 {
		neighbors = append(neighbors, Position{row, col - 1})
	}
	if col < g.Cols()-1 {
		neighbors = append(neighbors, Position{row, col + 1})
	}
	return neighbors
}

// Capacity is the number of orthogonal neighbors of a cell: 2 in a corner, 3 on an
// edge and 4 inside. A cell explodes once its charge reaches its capacity.
func (g Grid) Capacity(row, col int) int {
	capacity := 0
	if row > 0 {
		capacity++
	}
	if row < g.Rows()-1 {
		capacity++
	}
	if col > 0 {
		capacity++
	}
	if col < g.Cols()-1 {
		capacity++
	}
	return capacity
}

// Overflowing returns the cells at or above capacity in row-major order.
func (g Grid) Overflowing() []Position {
	var cells []Position
	for r, row := range g {
		for c, v := range row {
			if abs(v) >= g.Capacity(r, c) {
				cells = append(cells, Position{r, c})
			}
		}
	}
	return cells
}

// SameSign reports whether every nonzero cell has the same owner. An empty grid
// trivially does.
func (g Grid) SameSign() bool {
	seen := 0
	for _, row := range g {
		for _, v := range row {
			if v == 0 {
				continue
			}
			s := 1
			if v < 0 {
				s = -1
			}
			if seen == 0 {
				seen = s
			} else if s != seen {
				return false
			}
		}
	}
	return true
}

// Equal reports whether both grids have the same shape and cells.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%3d", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
