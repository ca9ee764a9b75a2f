package generator

import (
	"math/rand"

	"github.com/zucenko/mazewalk/model"
)

// DepthFirst is a randomized backtracking carver. The stack stands in for the
// call history of the recursive form of the algorithm.
type DepthFirst struct {
	grid     *model.Grid
	rng      *rand.Rand
	stack    []*model.Cell
	current  *model.Cell
	complete bool
}

func NewDepthFirst(grid *model.Grid, rng *rand.Rand) *DepthFirst {
	return &DepthFirst{
		grid:  grid,
		rng:   rng,
		stack: make([]*model.Cell, 0, grid.Size()*grid.Size()),
	}
}

func (g *DepthFirst) Algorithm() Algorithm {
	return DEPTH_FIRST
}

func (g *DepthFirst) Step() {
	if g.complete {
		return
	}
	if g.current == nil {
		g.current = g.grid.Start()
	}
	g.current.Visited = true

	if next := g.unvisitedNeighbour(g.current); next != nil {
		g.stack = append(g.stack, g.current)
		g.grid.SetWallBetween(g.current, next, false)
		g.current = next
		return
	}
	if n := len(g.stack); n > 0 {
		g.current = g.stack[n-1]
		g.stack = g.stack[:n-1]
		return
	}
	g.complete = true
}

func (g *DepthFirst) Complete() bool {
	return g.complete
}

// Current is the cell being scanned, nil before the first step.
func (g *DepthFirst) Current() *model.Cell {
	return g.current
}

// Depth is the size of the backtrack stack.
func (g *DepthFirst) Depth() int {
	return len(g.stack)
}

func (g *DepthFirst) ScanningRegion(cellPixels int) model.Rect {
	c := g.current
	if c == nil {
		c = g.grid.Start()
	}
	return model.Rect{X: c.Col(), Y: c.Row(), W: 1, H: 1}.Scale(cellPixels)
}

// unvisitedNeighbour picks uniformly among the in-bounds, unvisited
// neighbours of c, scanned up, right, down, left.
func (g *DepthFirst) unvisitedNeighbour(c *model.Cell) *model.Cell {
	var candidates [4]*model.Cell
	n := 0
	for _, d := range model.Directions {
		if next := g.grid.Neighbour(c, d); next != nil && !next.Visited {
			candidates[n] = next
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return candidates[g.rng.Intn(n)]
}
