package engine

import (
	"chainreaction/experiments/metrics"
	"chainreaction/game"
)

const MaxTurns = 500

type Engine interface {
	// Run plays a game till there's a winner or a max number of turns is reached
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Observer is called after every applied or forfeited move with the cascade
// snapshots it produced, oldest first, and the resulting board.
type Observer func(move metrics.MoveMetric, steps []game.Grid, board game.Grid)
