package game

import "errors"

var ErrCascadeLimit = errors.New("cascade did not settle within step limit")

// Sink receives a snapshot of the grid after every cascade step.
type Sink interface {
	Enqueue(Grid)
}

type discard struct{}

func (discard) Enqueue(Grid) {}

// Discard is a sink that drops every snapshot.
var Discard Sink = discard{}

// Resolve runs chain reactions on grid until no cell overflows or every nonzero
// cell belongs to one player. It mutates grid in place, pushes a copy of the grid
// to sink after each step and returns the number of steps.
func Resolve(grid Grid, sink Sink) int {
	steps, _ := resolve(grid, sink, 0)
	return steps
}

// ResolveLimit is Resolve with a hard bound on the number of steps.
func ResolveLimit(grid Grid, sink Sink, maxSteps int) (int, error) {
	if maxSteps <= 0 {
		return Resolve(grid, sink), nil
	}
	return resolve(grid, sink, maxSteps)
}

func resolve(grid Grid, sink Sink, limit int) (int, error) {
	if sink == nil {
		sink = Discard
	}

	steps := 0
	for {
		cells := grid.Overflowing()
		if len(cells) == 0 || grid.SameSign() {
			return steps, nil
		}
		if limit > 0 && steps >= limit {
			return steps, ErrCascadeLimit
		}

		grid.spill(cells)
		sink.Enqueue(grid.Copy())
		steps++
	}
}

// spill performs one synchronous step. Every overflowing cell empties and each of
// its neighbors is converted to the mover's sign and gains one charge. The mover is
// the owner of the first overflowing cell; a single move never overflows cells of
// both signs in the same step.
func (g Grid) spill(cells []Position) {
	first := g[cells[0].Row][cells[0].Col]
	sign := -1
	if first > 0 {
		sign = 1
	}

	for _, p := range cells {
		g[p.Row][p.Col] = 0
	}
	for _, p := range cells {
		for _, n := range g.Neighbors(p.Row, p.Col) {
			g[n.Row][n.Col] = sign*abs(g[n.Row][n.Col]) + sign
		}
	}
}
