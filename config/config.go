package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"chainreaction/game"
	"chainreaction/player"

	"gopkg.in/yaml.v3"
)

const (
	KindBot    = "bot"
	KindRandom = "random"
)

var ErrInvalid = errors.New("invalid config")

// PlayerSpec describes one side of a matchup.
type PlayerSpec struct {
	Name       string `yaml:"name"`
	Kind       string `yaml:"kind"`                 // KindBot or KindRandom
	Difficulty int    `yaml:"difficulty,omitempty"` // Tree height for bots
	Seed       uint64 `yaml:"seed,omitempty"`       // Random players only
}

type Matchup struct {
	One PlayerSpec `yaml:"one"`
	Two PlayerSpec `yaml:"two"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	Name      string    `yaml:"name"`
	Rows      int       `yaml:"rows"`
	Cols      int       `yaml:"cols"`
	Games     int       `yaml:"games"` // Per matchup
	MaxTurns  int       `yaml:"max_turns"`
	Alternate bool      `yaml:"alternate"` // Swap the starting side every game
	Output    string    `yaml:"output"`
	Matchups  []Matchup `yaml:"matchups"`
	Log       LogConfig `yaml:"log"`
}

func Default() Config {
	return Config{
		Name:      "difficulty",
		Rows:      game.DefaultRows,
		Cols:      game.DefaultCols,
		Games:     10,
		MaxTurns:  500,
		Alternate: true,
		Output:    "experiments",
		Matchups: []Matchup{
			{
				One: PlayerSpec{Name: "Easy Bot", Kind: KindBot, Difficulty: player.Easy},
				Two: PlayerSpec{Name: "Hard Bot", Kind: KindBot, Difficulty: player.Hard},
			},
			{
				One: PlayerSpec{Name: "Random", Kind: KindRandom, Seed: 1},
				Two: PlayerSpec{Name: "Normal Bot", Kind: KindBot, Difficulty: player.Normal},
			},
		},
		Log: LogConfig{Level: "info", Format: "console"},
	}
}

// Load merges configuration with priority env > file > defaults. An empty path
// skips the file.
func Load(path string) (Config, error) {
	config := Default()

	if path != "" {
		if err := loadFile(path, &config); err != nil {
			return config, fmt.Errorf("load config file: %w", err)
		}
	}

	loadEnv(&config)

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func loadFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

func loadEnv(config *Config) {
	if v := os.Getenv("CHAINREACTION_ROWS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			config.Rows = i
		}
	}
	if v := os.Getenv("CHAINREACTION_COLS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			config.Cols = i
		}
	}
	if v := os.Getenv("CHAINREACTION_GAMES"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			config.Games = i
		}
	}
	if v := os.Getenv("CHAINREACTION_MAX_TURNS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			config.MaxTurns = i
		}
	}
	if v := os.Getenv("CHAINREACTION_OUTPUT"); v != "" {
		config.Output = v
	}
	if v := os.Getenv("CHAINREACTION_LOG_LEVEL"); v != "" {
		config.Log.Level = v
	}
}

func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalid)
	}
	if c.Rows < 1 || c.Cols < 1 || c.Rows*c.Cols < 2 {
		return fmt.Errorf("%w: board %dx%d needs at least two cells", ErrInvalid, c.Rows, c.Cols)
	}
	if c.Games < 1 {
		return fmt.Errorf("%w: games must be >= 1", ErrInvalid)
	}
	if c.MaxTurns < 1 {
		return fmt.Errorf("%w: max_turns must be >= 1", ErrInvalid)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output must not be empty", ErrInvalid)
	}
	if len(c.Matchups) == 0 {
		return fmt.Errorf("%w: at least one matchup is required", ErrInvalid)
	}
	for i, m := range c.Matchups {
		if err := m.One.Validate(); err != nil {
			return fmt.Errorf("matchup %d player one: %w", i+1, err)
		}
		if err := m.Two.Validate(); err != nil {
			return fmt.Errorf("matchup %d player two: %w", i+1, err)
		}
	}
	return nil
}

func (s PlayerSpec) Validate() error {
	switch s.Kind {
	case KindBot:
		if s.Difficulty < player.Easy || s.Difficulty > player.Hard {
			return fmt.Errorf("%w: difficulty must be between %d and %d", ErrInvalid, player.Easy, player.Hard)
		}
	case KindRandom:
	default:
		return fmt.Errorf("%w: unknown player kind %q", ErrInvalid, s.Kind)
	}
	return nil
}

// DisplayName falls back to a description of the player when no name is set.
func (s PlayerSpec) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	if s.Kind == KindBot {
		return player.DifficultyName(s.Difficulty) + " Bot"
	}
	return "Random"
}

// NewPlayer builds the player described by s for side.
func (s PlayerSpec) NewPlayer(side int, withMetrics bool) player.Player {
	if s.Kind == KindRandom {
		return player.NewRandom(s.DisplayName(), side, s.Seed)
	}
	options := []player.Option{
		player.WithName(s.DisplayName()),
		player.WithDifficulty(s.Difficulty),
	}
	if withMetrics {
		options = append(options, player.WithMetrics())
	}
	return player.NewBot(side, options...)
}

// ParsePlayerSpec reads the command line form of a player: "bot", "bot:<difficulty>",
// "random" or "random:<seed>".
func ParsePlayerSpec(s string) (PlayerSpec, error) {
	kind, arg, _ := strings.Cut(s, ":")
	switch kind {
	case KindBot:
		spec := PlayerSpec{Kind: KindBot, Difficulty: player.Hard}
		if arg != "" {
			difficulty, err := player.ParseDifficulty(arg)
			if err != nil {
				return PlayerSpec{}, fmt.Errorf("%w: %w", ErrInvalid, err)
			}
			spec.Difficulty = difficulty
		}
		return spec, nil
	case KindRandom:
		spec := PlayerSpec{Kind: KindRandom, Seed: uint64(time.Now().UnixNano())}
		if arg != "" {
			seed, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return PlayerSpec{}, fmt.Errorf("%w: bad seed %q", ErrInvalid, arg)
			}
			spec.Seed = seed
		}
		return spec, nil
	default:
		return PlayerSpec{}, fmt.Errorf("%w: unknown player %q", ErrInvalid, s)
	}
}
