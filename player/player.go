package player

import (
	"errors"

	"chainreaction/game"
)

var ErrNoMove = errors.New("player has no cell to play")

// Player proposes a move for a snapshot of the live board. The engine validates and
// applies it.
type Player interface {
	Name() string
	GetPlay(board game.Grid) (game.Position, error)
}
