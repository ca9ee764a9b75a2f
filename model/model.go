package model

import "fmt"

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four directions in the order neighbours are scanned.
var Directions = [4]Direction{Up, Right, Down, Left}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the column and row offset of a step in direction d.
func (d Direction) Delta() (dc, dr int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		panic(d)
	}
}

func (d Direction) Name() string {
	switch d {
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	default:
		return fmt.Sprintf("N/A(%d)", d)
	}
}

func (d Direction) String() string {
	return d.Name()
}

// Cell is one slot of the grid. Its position never changes after the grid is
// built; its walls change only through Grid.SetWall so that both sides of a
// shared wall stay equal.
type Cell struct {
	col, row int
	walls    [4]bool
	// Visited marks cells reached by the depth-first carver. Renderers paint
	// the base background for visited cells.
	Visited bool
}

func (c *Cell) Col() int { return c.col }
func (c *Cell) Row() int { return c.row }

// Wall reports whether the wall on side d of the cell is present.
func (c *Cell) Wall(d Direction) bool {
	return c.walls[d]
}

// Walls returns a copy of the four wall flags indexed by Direction.
func (c *Cell) Walls() [4]bool {
	return c.walls
}

func (c *Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.col, c.row)
}

// Rect is a pixel or cell rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies strictly inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

// Scale multiplies every coordinate by k, turning a cell rectangle into pixels.
func (r Rect) Scale(k int) Rect {
	return Rect{X: r.X * k, Y: r.Y * k, W: r.W * k, H: r.H * k}
}
