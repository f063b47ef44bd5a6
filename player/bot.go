package player

import (
	"fmt"
	"strconv"

	"chainreaction/experiments/metrics"
	"chainreaction/game"
	"chainreaction/searcher"

	"github.com/rs/zerolog/log"
)

// Difficulty is the height of the search tree the bot builds.
const (
	Easy   = 2
	Normal = 3
	Hard   = 4
)

const DefaultBotName = "P2 Bot"

type Option func(b *Bot)

// Bot plays the move chosen by a fresh minimax tree on every turn.
type Bot struct {
	name        string
	side        int
	difficulty  int
	withMetrics bool
	last        metrics.SearchMetric
}

func WithName(name string) Option {
	return func(b *Bot) {
		if name != "" {
			b.name = name
		}
	}
}

// WithDifficulty sets the tree height, clamped to [Easy, Hard].
func WithDifficulty(difficulty int) Option {
	return func(b *Bot) {
		b.difficulty = clamp(difficulty)
	}
}

func WithMetrics() Option {
	return func(b *Bot) {
		b.withMetrics = true
	}
}

func NewBot(side int, options ...Option) *Bot {
	if side != game.PlayerOne && side != game.PlayerTwo {
		panic(fmt.Sprintf("invalid side %d", side))
	}

	b := &Bot{ // Default values
		name:       DefaultBotName,
		side:       side,
		difficulty: Hard,
	}
	for _, option := range options {
		option(b)
	}
	return b
}

func (b *Bot) Name() string {
	return b.name
}

func (b *Bot) Side() int {
	return b.side
}

func (b *Bot) Difficulty() int {
	return b.difficulty
}

func (b *Bot) GetPlay(board game.Grid) (game.Position, error) {
	options := []searcher.Option{searcher.WithHeight(b.difficulty)}
	if b.withMetrics {
		options = append(options, searcher.WithMetrics())
	}

	tree := searcher.NewTree(board, b.side, options...)
	defer tree.Release()

	move, err := tree.GetMove()
	if err != nil {
		return game.Position{}, fmt.Errorf("%s: %w", b.name, err)
	}
	b.last = tree.Metrics()

	log.Debug().
		Str("player", b.name).
		Int("row", move.Row).
		Int("col", move.Col).
		Int("nodes", b.last.Nodes).
		Msg("bot picked move")
	return move, nil
}

// LastMetric reports the search behind the most recent move. Empty unless the bot
// was built WithMetrics.
func (b *Bot) LastMetric() metrics.SearchMetric {
	return b.last
}

func (b *Bot) Increase() {
	b.difficulty = clamp(b.difficulty + 1)
}

func (b *Bot) Decrease() {
	b.difficulty = clamp(b.difficulty - 1)
}

func (b *Bot) DifficultyName() string {
	return DifficultyName(b.difficulty)
}

func DifficultyName(difficulty int) string {
	switch difficulty {
	case Easy:
		return "Easy"
	case Normal:
		return "Normal"
	case Hard:
		return "Hard"
	default:
		return strconv.Itoa(difficulty)
	}
}

// ParseDifficulty accepts a difficulty name or a tree height.
func ParseDifficulty(s string) (int, error) {
	switch s {
	case "easy", "Easy":
		return Easy, nil
	case "normal", "Normal":
		return Normal, nil
	case "hard", "Hard":
		return Hard, nil
	}
	difficulty, err := strconv.Atoi(s)
	if err != nil || difficulty < Easy || difficulty > Hard {
		return 0, fmt.Errorf("unknown difficulty %q", s)
	}
	return difficulty, nil
}

func clamp(difficulty int) int {
	return max(Easy, min(Hard, difficulty))
}
