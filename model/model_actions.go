package model

import "fmt"

// Grid is a square, row-major matrix of cells. Its size is fixed at creation.
type Grid struct {
	Matrix [][]*Cell
}

// NewGrid builds a size×size grid whose cells all start with every wall
// present (walls=true) or every wall absent (walls=false).
func NewGrid(size int, walls bool) *Grid {
	if size < 2 {
		panic(fmt.Sprintf("model: grid size must be at least 2, got %d", size))
	}
	matrix := make([][]*Cell, 0, size)
	for r := 0; r < size; r++ {
		row := make([]*Cell, 0, size)
		for c := 0; c < size; c++ {
			row = append(row, &Cell{col: c, row: r, walls: [4]bool{walls, walls, walls, walls}})
		}
		matrix = append(matrix, row)
	}
	return &Grid{Matrix: matrix}
}

func (g *Grid) Size() int {
	return len(g.Matrix)
}

func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && row < len(g.Matrix) && col < len(g.Matrix[row])
}

// At returns the cell at (col, row) or nil when out of bounds.
func (g *Grid) At(col, row int) *Cell {
	if !g.InBounds(col, row) {
		return nil
	}
	return g.Matrix[row][col]
}

// Start is the top-left cell, where players begin.
func (g *Grid) Start() *Cell {
	return g.Matrix[0][0]
}

// Goal is the bottom-right cell.
func (g *Grid) Goal() *Cell {
	last := g.Matrix[len(g.Matrix)-1]
	return last[len(last)-1]
}

// Neighbour returns the cell adjacent to c in direction d, or nil at the edge.
func (g *Grid) Neighbour(c *Cell, d Direction) *Cell {
	dc, dr := d.Delta()
	return g.At(c.col+dc, c.row+dr)
}

// SetWall sets the wall on side d of c and, when a neighbour exists on that
// side, the facing wall of the neighbour.
func (g *Grid) SetWall(c *Cell, d Direction, present bool) {
	c.walls[d] = present
	if n := g.Neighbour(c, d); n != nil {
		n.walls[d.Opposite()] = present
	}
}

// SetWallBetween sets the shared wall of two adjacent cells.
func (g *Grid) SetWallBetween(a, b *Cell, present bool) {
	d, ok := DirectionBetween(a, b)
	if !ok {
		panic(fmt.Sprintf("model: cells %v and %v are not adjacent", a, b))
	}
	g.SetWall(a, d, present)
}

// DirectionBetween returns the direction leading from a to an adjacent b.
func DirectionBetween(a, b *Cell) (Direction, bool) {
	for _, d := range Directions {
		dc, dr := d.Delta()
		if a.col+dc == b.col && a.row+dr == b.row {
			return d, true
		}
	}
	return 0, false
}

// Move returns the neighbour of c in direction d when it exists and no wall
// separates the two cells. A nil result means the move is rejected.
func (g *Grid) Move(c *Cell, d Direction) *Cell {
	n := g.Neighbour(c, d)
	if n == nil || c.walls[d] {
		return nil
	}
	return n
}

// Each calls f for every cell in row-major order.
func (g *Grid) Each(f func(c *Cell)) {
	for _, row := range g.Matrix {
		for _, c := range row {
			f(c)
		}
	}
}
