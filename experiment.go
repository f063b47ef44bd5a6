package main

import (
	"fmt"

	"chainreaction/config"
	"chainreaction/experiments"
	"chainreaction/logging"

	"github.com/spf13/cobra"
)

var (
	experimentConfig     string
	experimentThroughput bool
)

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Run configured matchups and write CSV records",
	Long: `Run every matchup of a YAML configuration and store game and move records
under <output>/<name>/<timestamp>.

Environment variables CHAINREACTION_ROWS, CHAINREACTION_COLS, CHAINREACTION_GAMES,
CHAINREACTION_MAX_TURNS, CHAINREACTION_OUTPUT and CHAINREACTION_LOG_LEVEL override
the file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(experimentConfig)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("log-level") || !cmd.Flags().Changed("log-format") {
			level, format := cfg.Log.Level, cfg.Log.Format
			if cmd.Flags().Changed("log-level") {
				level = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				format = logFormat
			}
			if err := logging.Setup(level, format, cmd.ErrOrStderr()); err != nil {
				return err
			}
		}

		run := experiments.Run
		if experimentThroughput {
			run = experiments.RunThroughput
		}
		result, err := run(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, s := range result.Summary {
			fmt.Fprintf(out, "%s vs %s: %d-%d, %d draws\n", s.One, s.Two, s.Wins[0], s.Wins[1], s.Draws)
		}
		fmt.Fprintf(out, "records stored in %s\n", result.Dir)
		return nil
	},
}

func init() {
	experimentCmd.Flags().StringVar(&experimentConfig, "config", "", "path to a YAML configuration (defaults when empty)")
	experimentCmd.Flags().BoolVar(&experimentThroughput, "throughput", false, "pit every bot difficulty against itself instead of the configured matchups")
}
