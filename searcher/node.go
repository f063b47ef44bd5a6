package searcher

import "chainreaction/game"

// node is one hypothetical future board. Every node owns its board; no two nodes
// share rows.
type node struct {
	board    game.Grid
	depth    int
	player   int
	children []*node
	score    float64
	scored   bool
	move     game.Position
}

func newNode(board game.Grid, depth int, player int, move game.Position) *node {
	return &node{
		board:  board,
		depth:  depth,
		player: player,
		move:   move,
	}
}

// isTerminal reports whether every cell, empty ones included, has the same strict sign.
// Only a completely filled board can be terminal.
func (n *node) isTerminal() bool {
	positive, negative := true, true
	for _, row := range n.board {
		for _, v := range row {
			if v <= 0 {
				positive = false
			}
			if v >= 0 {
				negative = false
			}
			if !positive && !negative {
				return false
			}
		}
	}
	return positive || negative
}

// expand adds one child per cell already owned by the node's player, in row-major order.
func (n *node) expand() {
	for r, row := range n.board {
		for c, v := range row {
			if v*n.player > 0 {
				move := game.Position{Row: r, Col: c}
				n.children = append(n.children, newNode(n.simulateMove(move), n.depth+1, n.player, move))
			}
		}
	}
}

func (n *node) simulateMove(move game.Position) game.Grid {
	board := n.board.Copy()
	board[move.Row][move.Col] += n.player
	game.Resolve(board, game.Discard)
	return board
}
