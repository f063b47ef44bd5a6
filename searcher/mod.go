package searcher

import (
	"errors"

	"chainreaction/game"
)

// DefaultHeight searches the root plus three plies, the hardest bot setting.
const DefaultHeight = 4

var (
	ErrNoLegalMove = errors.New("no legal move: search root has no children")
	ErrReleased    = errors.New("search tree has been released")
)

// Candidate is a root move with its backed-up minimax score.
type Candidate struct {
	Move  game.Position
	Score float64
}
