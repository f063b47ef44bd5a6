package player

import (
	"fmt"

	"chainreaction/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal cell: empty or already owned.
type Random struct {
	name string
	side int
	rng  *rand.Rand
}

func NewRandom(name string, side int, seed uint64) *Random {
	return &Random{
		name: name,
		side: side,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (p *Random) Name() string {
	return p.name
}

func (p *Random) GetPlay(board game.Grid) (game.Position, error) {
	moves := []game.Position{}
	for r, row := range board {
		for c, v := range row {
			if v == 0 || v*p.side > 0 {
				moves = append(moves, game.Position{Row: r, Col: c})
			}
		}
	}
	if len(moves) == 0 {
		return game.Position{}, fmt.Errorf("%s: %w", p.name, ErrNoMove)
	}
	return moves[p.rng.Intn(len(moves))], nil
}
