package experiments

import (
	"chainreaction/config"
	"chainreaction/player"
)

// RunThroughput pits every bot difficulty against itself, for the same playing
// strength and similar game length, to measure search cost per tree height.
// Matchups in cfg are ignored.
func RunThroughput(cfg config.Config) (Result, error) {
	matchUps := []config.Matchup{}
	for difficulty := player.Easy; difficulty <= player.Hard; difficulty++ {
		spec := config.PlayerSpec{Kind: config.KindBot, Difficulty: difficulty}
		matchUps = append(matchUps, config.Matchup{One: spec, Two: spec})
	}

	cfg.Matchups = matchUps
	return runExperiment("throughput", cfg, matchUps)
}
