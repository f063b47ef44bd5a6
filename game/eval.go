package game

import "math"

var _ Evaluator = Evaluate

// Evaluate tallies the charge player owns minus the charge the opponent owns. A
// board where only player has cells is a win (+Inf) and one where only the
// opponent has cells is a loss (-Inf). An empty board scores 0.
func Evaluate(board Grid, player int) float64 {
	score := 0
	mine, theirs := 0, 0
	for _, row := range board {
		for _, v := range row {
			switch owned := v * player; {
			case owned > 0:
				score += abs(v)
				mine++
			case owned < 0:
				score -= abs(v)
				theirs++
			}
		}
	}

	if mine > 0 && theirs == 0 {
		return math.Inf(1)
	}
	if theirs > 0 && mine == 0 {
		return math.Inf(-1)
	}
	return float64(score)
}
