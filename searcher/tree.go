package searcher

import (
	"chainreaction/experiments/metrics"
	"chainreaction/game"
)

type Option func(t *Tree)

// Tree is a fully expanded minimax tree for one move decision.
//
// Every ply simulates another move by the same player; only the max/min role
// alternates between levels. The search therefore answers "which move sets up the
// best board if I keep playing" rather than modelling the opponent's replies.
type Tree struct {
	player   int
	height   int
	evaluate game.Evaluator
	metrics  metrics.Collector
	root     *node
}

// WithHeight bounds the tree to height levels including the root. Heights below 2
// produce a root without children.
func WithHeight(height int) Option {
	return func(t *Tree) {
		if height >= 0 {
			t.height = height
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluator) Option {
	return func(t *Tree) {
		if evaluate != nil {
			t.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(t *Tree) {
		t.metrics = metrics.NewCollector()
	}
}

// NewTree builds the whole tree for player from a copy of board.
func NewTree(board game.Grid, player int, options ...Option) *Tree {
	t := &Tree{ // Default values
		player:   player,
		height:   DefaultHeight,
		evaluate: game.Evaluate,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(t)
	}

	t.metrics.Start(t.height)
	t.root = newNode(board.Copy(), 0, player, game.Position{})
	t.grow()
	t.metrics.SetCandidates(len(t.root.children))
	return t
}

func (t *Tree) grow() {
	stack := []*node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		t.metrics.AddNode(n.depth)

		if n.depth >= t.height-1 || n.isTerminal() {
			continue
		}
		n.expand()
		stack = append(stack, n.children...)
	}
}

func (t *Tree) Player() int {
	return t.player
}

func (t *Tree) Height() int {
	return t.height
}

// GetMove scores the tree and returns the root move with the highest score. Ties
// go to the earliest move in row-major order.
func (t *Tree) GetMove() (game.Position, error) {
	if t.root == nil {
		return game.Position{}, ErrReleased
	}
	if len(t.root.children) == 0 {
		return game.Position{}, ErrNoLegalMove
	}

	t.minimax(t.root, true)

	best := t.root.children[0]
	for _, child := range t.root.children[1:] {
		if child.score > best.score {
			best = child
		}
	}
	return best.move, nil
}

// Candidates lists the root moves in generation order with their scores. Scores are
// only meaningful after GetMove.
func (t *Tree) Candidates() []Candidate {
	if t.root == nil {
		return nil
	}
	candidates := make([]Candidate, len(t.root.children))
	for i, child := range t.root.children {
		candidates[i] = Candidate{Move: child.move, Score: child.score}
	}
	return candidates
}

// Recursion depth is bounded by the tree height.
func (t *Tree) minimax(n *node, maximizing bool) float64 {
	if len(n.children) == 0 {
		n.score = t.evaluate(n.board, n.player)
		n.scored = true
		t.metrics.AddLeaf()
		return n.score
	}

	best := t.minimax(n.children[0], !maximizing)
	for _, child := range n.children[1:] {
		score := t.minimax(child, !maximizing)
		if (maximizing && score > best) || (!maximizing && score < best) {
			best = score
		}
	}
	n.score = best
	n.scored = true
	return best
}

// Metrics reports what the search did so far. Empty unless built WithMetrics.
func (t *Tree) Metrics() metrics.SearchMetric {
	return t.metrics.Complete()
}

// Release drops every node. The tree cannot be used afterwards.
func (t *Tree) Release() {
	t.root = nil
}
