package main

import (
	"fmt"
	"io"

	"chainreaction/config"
	"chainreaction/engine"
	"chainreaction/experiments/metrics"
	"chainreaction/game"

	"github.com/spf13/cobra"
)

var (
	playRows      int
	playCols      int
	playOne       string
	playTwo       string
	playMaxTurns  int
	playShowSteps bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game between two computer players",
	Long: `Play one game and print the board after every move.

Players are given as bot[:easy|normal|hard|2-4] or random[:seed].
Player one owns the top-left corner and moves first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		one, err := config.ParsePlayerSpec(playOne)
		if err != nil {
			return fmt.Errorf("--p1: %w", err)
		}
		two, err := config.ParsePlayerSpec(playTwo)
		if err != nil {
			return fmt.Errorf("--p2: %w", err)
		}
		if one.Kind == config.KindBot {
			one.Name = "P1 Bot"
		}

		out := cmd.OutOrStdout()
		e, err := engine.NewLocalEngine(
			one.NewPlayer(game.PlayerOne, false),
			two.NewPlayer(game.PlayerTwo, false),
			engine.WithBoardSize(playRows, playCols),
			engine.WithMaxTurns(playMaxTurns),
			engine.WithObserver(printMove(out, playShowSteps)),
		)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s\n", e.Board())
		winner, gameMetric, _ := e.Run()

		switch winner {
		case game.PlayerOne:
			fmt.Fprintf(out, "Player one wins after %d moves\n", gameMetric.TotalMoves)
		case game.PlayerTwo:
			fmt.Fprintf(out, "Player two wins after %d moves\n", gameMetric.TotalMoves)
		default:
			fmt.Fprintf(out, "No winner after %d moves\n", gameMetric.TotalMoves)
		}
		return nil
	},
}

func init() {
	playCmd.Flags().IntVar(&playRows, "rows", game.DefaultRows, "board rows")
	playCmd.Flags().IntVar(&playCols, "cols", game.DefaultCols, "board columns")
	playCmd.Flags().StringVar(&playOne, "p1", "bot:normal", "player one")
	playCmd.Flags().StringVar(&playTwo, "p2", "bot:hard", "player two")
	playCmd.Flags().IntVar(&playMaxTurns, "max-turns", engine.MaxTurns, "stop after this many turns")
	playCmd.Flags().BoolVar(&playShowSteps, "show-steps", false, "print every cascade step")
}

func printMove(out io.Writer, showSteps bool) engine.Observer {
	return func(move metrics.MoveMetric, steps []game.Grid, board game.Grid) {
		if move.Forfeit {
			fmt.Fprintf(out, "Turn %d: player %d forfeits with (%d,%d)\n", move.Turn, move.Player, move.Move.Row, move.Move.Col)
			return
		}
		fmt.Fprintf(out, "Turn %d: player %d plays (%d,%d), %d cascade steps\n",
			move.Turn, move.Player, move.Move.Row, move.Move.Col, move.Steps)
		if showSteps {
			for i, step := range steps {
				fmt.Fprintf(out, "step %d\n%s\n", i+1, step)
			}
		}
		fmt.Fprintf(out, "%s\n", board)
	}
}
