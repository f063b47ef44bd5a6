package game

const (
	PlayerOne = 1
	PlayerTwo = -1
)

// Position is a cell coordinate on a grid.
type Position struct {
	Row int
	Col int
}

// Evaluator scores a board from player's perspective. Higher is better for player.
type Evaluator func(board Grid, player int) float64

// Opponent returns the other side of a two player game.
func Opponent(player int) int {
	return -player
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
