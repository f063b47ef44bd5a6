package engine

import (
	"fmt"
	"time"

	"chainreaction/experiments/metrics"
	"chainreaction/game"
	"chainreaction/player"
	"chainreaction/queue"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*LocalEngine)(nil)

type Option func(e *LocalEngine)

// LocalEngine plays one game between two in-process players. The first player
// takes the PlayerOne side and moves first.
type LocalEngine struct {
	rows     int
	cols     int
	maxTurns int
	players  [2]player.Player
	observer Observer
	board    *game.Board
	steps    *queue.Queue[game.Grid]
}

type metricReporter interface {
	LastMetric() metrics.SearchMetric
}

func WithBoardSize(rows, cols int) Option {
	return func(e *LocalEngine) {
		e.rows = rows
		e.cols = cols
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(e *LocalEngine) {
		e.observer = observer
	}
}

func NewLocalEngine(one, two player.Player, options ...Option) (*LocalEngine, error) {
	if one == nil || two == nil {
		panic("need two players")
	}

	e := &LocalEngine{ // Default values
		rows:     game.DefaultRows,
		cols:     game.DefaultCols,
		maxTurns: MaxTurns,
		players:  [2]player.Player{one, two},
	}
	for _, option := range options {
		option(e)
	}

	board, err := game.NewBoard(e.rows, e.cols)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	e.board = board
	e.steps = queue.New[game.Grid](e.rows * e.cols)
	return e, nil
}

// Board returns a copy of the current cells.
func (e *LocalEngine) Board() game.Grid {
	return e.board.Grid()
}

func (e *LocalEngine) player(side int) player.Player {
	if side == game.PlayerOne {
		return e.players[0]
	}
	return e.players[1]
}

// Run executes the entire game loop. A player that errors or proposes an illegal
// cell forfeits and the opponent wins. Reaching the turn limit is a draw (0).
func (e *LocalEngine) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: game.PlayerOne,
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("%s is starting", e.players[0].Name())

	winner := 0
	current := game.PlayerOne
	for turn := 1; turn <= e.maxTurns; turn++ {
		p := e.player(current)

		move, err := p.GetPlay(e.board.Grid())
		moveMetric := metrics.MoveMetric{Turn: turn, Player: current, Move: move}
		if reporter, ok := p.(metricReporter); ok && err == nil {
			moveMetric.SearchMetric = reporter.LastMetric()
		}

		if err != nil || !e.board.AddPiece(move, current) {
			log.Warn().
				Err(err).
				Str("player", p.Name()).
				Int("turn", turn).
				Int("row", move.Row).
				Int("col", move.Col).
				Msg("invalid move, forfeiting")
			moveMetric.Forfeit = true
			moveMetrics = append(moveMetrics, moveMetric)
			e.notify(moveMetric)
			gameMetric.Forfeit = true
			winner = game.Opponent(current)
			break
		}

		moveMetric.Steps = e.board.Overflow(e.steps)
		gameMetric.TotalSteps += moveMetric.Steps
		moveMetrics = append(moveMetrics, moveMetric)
		e.notify(moveMetric)

		log.Debug().
			Str("player", p.Name()).
			Int("turn", turn).
			Int("row", move.Row).
			Int("col", move.Col).
			Int("steps", moveMetric.Steps).
			Msg("move applied")

		if winner = e.board.Winner(); winner != 0 {
			break
		}
		current = game.Opponent(current)
	}

	if winner != 0 {
		log.Info().Msgf("%s wins after %d turns", e.player(winner).Name(), e.board.Turn())
	} else {
		log.Info().Msgf("stopped after %d turns without a winner", e.maxTurns)
	}

	gameMetric.Winner = winner
	gameMetric.TotalMoves = e.board.Turn()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	return winner, gameMetric, moveMetrics
}

// notify hands this move's cascade snapshots to the observer. The queue is drained
// either way so snapshots never outlive their move.
func (e *LocalEngine) notify(move metrics.MoveMetric) {
	steps := e.steps.Drain()
	if e.observer != nil {
		e.observer(move, steps, e.board.Grid())
	}
}
