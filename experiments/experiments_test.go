package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"chainreaction/config"
	"chainreaction/game"
	"chainreaction/player"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func smallConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.Name = "test"
	cfg.Rows, cfg.Cols = 3, 3
	cfg.Games = 2
	cfg.MaxTurns = 40
	cfg.Output = t.TempDir()
	cfg.Matchups = []config.Matchup{{
		One: config.PlayerSpec{Name: "Random", Kind: config.KindRandom, Seed: 1},
		Two: config.PlayerSpec{Name: "Bot", Kind: config.KindBot, Difficulty: player.Easy},
	}}
	return cfg
}

func TestRun(t *testing.T) {
	cfg := smallConfig(t)

	result, err := Run(cfg)

	require.NoError(t, err)
	require.Len(t, result.Games, cfg.Games)

	t.Run("alternates the starting side", func(t *testing.T) {
		require.Equal(t, "Random", result.Games[0].PlayerOne)
		require.Equal(t, "Bot", result.Games[0].PlayerTwo)
		require.Equal(t, "Bot", result.Games[1].PlayerOne)
		require.Equal(t, "Random", result.Games[1].PlayerTwo)
	})

	t.Run("records every move", func(t *testing.T) {
		moves := 0
		for _, g := range result.Games {
			require.Equal(t, 1, g.Matchup)
			require.Equal(t, game.PlayerOne, g.StartingPlayer)
			moves += g.TotalMoves
			if g.Forfeit {
				moves++
			}
		}
		require.Len(t, result.Moves, moves)
		require.NotEqual(t, result.Games[0].ID, result.Games[1].ID)
		require.Equal(t, result.Games[0].ID, result.Moves[0].Game)
	})

	t.Run("summarizes the matchup", func(t *testing.T) {
		require.Len(t, result.Summary, 1)
		s := result.Summary[0]
		require.Equal(t, "Random", s.One)
		require.Equal(t, "Bot", s.Two)
		require.Equal(t, cfg.Games, s.Wins[0]+s.Wins[1]+s.Draws)
	})

	t.Run("writes the output files", func(t *testing.T) {
		require.Equal(t, filepath.Join(cfg.Output, "test"), filepath.Dir(result.Dir))
		for _, name := range []string{"setup.yaml", "game_records.csv", "move_records.csv"} {
			_, err := os.Stat(filepath.Join(result.Dir, name))
			require.NoError(t, err, "Missing %s", name)
		}

		data, err := os.ReadFile(filepath.Join(result.Dir, "setup.yaml"))
		require.NoError(t, err)
		var setup config.Config
		require.NoError(t, yaml.Unmarshal(data, &setup))
		require.Equal(t, cfg, setup)
	})
}

func TestRunWithoutAlternating(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Alternate = false

	result, err := Run(cfg)

	require.NoError(t, err)
	for _, g := range result.Games {
		require.Equal(t, "Random", g.PlayerOne)
	}
}

func TestRunThroughput(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Rows, cfg.Cols = 2, 3
	cfg.Games = 1
	cfg.MaxTurns = 6

	result, err := RunThroughput(cfg)

	require.NoError(t, err)
	require.Len(t, result.Summary, player.Hard-player.Easy+1)
	require.Equal(t, "Easy Bot", result.Summary[0].One)
	require.Equal(t, "Hard Bot", result.Summary[2].Two)
	require.Equal(t, filepath.Join(cfg.Output, "throughput"), filepath.Dir(result.Dir))
	for _, m := range result.Moves {
		if !m.Forfeit {
			require.Positive(t, m.Nodes, "Bots in throughput runs always collect metrics")
		}
	}
}
