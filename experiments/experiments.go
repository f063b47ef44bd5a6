package experiments

import (
	"fmt"

	"chainreaction/config"
	"chainreaction/engine"
	"chainreaction/experiments/metrics"
	"chainreaction/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Result is where an experiment was stored and what it recorded.
type Result struct {
	Dir     string
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Summary []Standing
}

// Standing tallies one matchup from the point of view of its configured players,
// regardless of which side each one played.
type Standing struct {
	One   string
	Two   string
	Wins  [2]int // Wins of One and Two
	Draws int
}

// Run plays every configured matchup and stores the records under
// <output>/<name>/<timestamp>.
func Run(cfg config.Config) (Result, error) {
	return runExperiment(cfg.Name, cfg, cfg.Matchups)
}

func runExperiment(name string, cfg config.Config, matchUps []config.Matchup) (Result, error) {
	result := Result{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		standing := Standing{One: matchup.One.DisplayName(), Two: matchup.Two.DisplayName()}

		log.Info().Msgf("starting matchup %d of %d between %s and %s...", mi+1, len(matchUps), standing.One, standing.Two)

		for i := 0; i < cfg.Games; i++ {
			// Odd games swap sides so neither player always moves first
			swapped := cfg.Alternate && i%2 == 1
			first, second := matchup.One, matchup.Two
			if swapped {
				first, second = second, first
			}

			winner, gameMetric, moveMetrics, err := runGame(cfg, first, second)
			if err != nil {
				return result, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			record := metrics.GameRecord{
				ID:         uuid.New(),
				Matchup:    mi + 1,
				PlayerOne:  first.DisplayName(),
				PlayerTwo:  second.DisplayName(),
				GameMetric: gameMetric,
			}
			result.Games = append(result.Games, record)
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       record.ID,
					MoveMetric: mm,
				})
			}

			switch {
			case winner == 0:
				standing.Draws++
			case (winner == game.PlayerOne) != swapped:
				standing.Wins[0]++
			default:
				standing.Wins[1]++
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %d", mi+1, len(matchUps), i+1, cfg.Games, winner)
		}

		result.Summary = append(result.Summary, standing)
		log.Info().Msgf("completed matchup %d of %d: %s %d, %s %d, draws %d",
			mi+1, len(matchUps), standing.One, standing.Wins[0], standing.Two, standing.Wins[1], standing.Draws)
	}

	log.Info().Msgf("completed %s experiment", name)

	dir, err := store(name, cfg, result)
	if err != nil {
		return result, err
	}
	result.Dir = dir
	return result, nil
}

// store writes the experiment setup and records.
func store(name string, cfg config.Config, result Result) (string, error) {
	writer, err := metrics.NewWriter(cfg.Output, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteSetup(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to store setup: %w", err)
	}
	log.Info().Msg("stored setup")

	err = writer.WriteGameRecords(result.Games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(result.Moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game with first on the PlayerOne side.
func runGame(cfg config.Config, first, second config.PlayerSpec) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	e, err := engine.NewLocalEngine(
		first.NewPlayer(game.PlayerOne, true),
		second.NewPlayer(game.PlayerTwo, true),
		engine.WithBoardSize(cfg.Rows, cfg.Cols),
		engine.WithMaxTurns(cfg.MaxTurns),
	)
	if err != nil {
		return 0, metrics.GameMetric{}, nil, err
	}

	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}
