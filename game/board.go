package game

import (
	"errors"
	"fmt"
)

const (
	DefaultRows = 5
	DefaultCols = 6
)

var ErrBoardSize = errors.New("board needs at least two cells")

// Board is a live game: a grid seeded with one piece per player and a turn counter.
type Board struct {
	grid Grid
	turn int
}

// NewBoard places PlayerOne in the top-left corner and PlayerTwo in the
// bottom-right corner of an otherwise empty grid.
func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrBoardSize)
	}
	grid := NewGrid(rows, cols)
	grid[0][0] = PlayerOne
	grid[rows-1][cols-1] = PlayerTwo
	return &Board{grid: grid}, nil
}

// Grid returns a copy of the current cells.
func (b *Board) Grid() Grid {
	return b.grid.Copy()
}

// Turn is the number of pieces added so far.
func (b *Board) Turn() int {
	return b.turn
}

// ValidMove reports whether player may add a piece at pos: the cell must be on the
// board and either empty or already owned by player.
func (b *Board) ValidMove(pos Position, player int) bool {
	if !b.grid.InBounds(pos.Row, pos.Col) {
		return false
	}
	v := b.grid[pos.Row][pos.Col]
	return v == 0 || v*player > 0
}

// AddPiece adds one charge for player at pos if the move is valid.
func (b *Board) AddPiece(pos Position, player int) bool {
	if !b.ValidMove(pos, player) {
		return false
	}
	b.grid[pos.Row][pos.Col] += player
	b.turn++
	return true
}

// Overflow resolves the cascade caused by the last piece, recording each step in sink.
func (b *Board) Overflow(sink Sink) int {
	return Resolve(b.grid, sink)
}

// Winner returns the player owning every piece on the board, or 0 while both
// players still have pieces or before the first move.
func (b *Board) Winner() int {
	if b.turn == 0 {
		return 0
	}
	ones, twos := 0, 0
	for _, row := range b.grid {
		for _, v := range row {
			if v > 0 {
				ones++
			} else if v < 0 {
				twos++
			}
			if ones > 0 && twos > 0 {
				return 0
			}
		}
	}
	if ones == 0 {
		return PlayerTwo
	}
	if twos == 0 {
		return PlayerOne
	}
	return 0
}
