package generator

import (
	"fmt"
	"math/rand"

	"github.com/zucenko/mazewalk/model"
)

// Orientation tells how a chamber is cut. A HORIZONTAL cut splits the width
// with a vertical wall line, a VERTICAL cut splits the height.
type Orientation int

const (
	HORIZONTAL Orientation = iota
	VERTICAL
)

func (o Orientation) Name() string {
	switch o {
	case HORIZONTAL:
		return "HORIZONTAL"
	case VERTICAL:
		return "VERTICAL"
	default:
		return fmt.Sprintf("N/A(%d)", o)
	}
}

// Chamber is a rectangular sub-region of the grid, in cells.
type Chamber struct {
	Col, Row      int
	Width, Height int
}

// Divisible reports whether the chamber can still be cut in two.
func (c Chamber) Divisible() bool {
	return c.Width > 1 && c.Height > 1
}

func (c Chamber) Rect() model.Rect {
	return model.Rect{X: c.Col, Y: c.Row, W: c.Width, H: c.Height}
}

// Division is a randomized recursive-division wall builder walked with an
// explicit stack of pending chambers.
type Division struct {
	grid         *model.Grid
	rng          *rand.Rand
	todo         []Chamber
	current      Chamber
	finishedInit bool
	complete     bool
}

func NewDivision(grid *model.Grid, rng *rand.Rand) *Division {
	size := grid.Size()
	return &Division{
		grid:    grid,
		rng:     rng,
		todo:    make([]Chamber, 0),
		current: Chamber{Col: 0, Row: 0, Width: size, Height: size},
	}
}

func (g *Division) Algorithm() Algorithm {
	return ITERATIVE_DIVISION
}

func (g *Division) Step() {
	if g.complete {
		return
	}
	if !g.finishedInit {
		g.drawBorder()
		g.finishedInit = true
	}
	if first, second, ok := g.divide(g.current); ok {
		g.current = first
		g.todo = append(g.todo, second)
		return
	}
	if n := len(g.todo); n > 0 {
		g.current = g.todo[n-1]
		g.todo = g.todo[:n-1]
		return
	}
	g.complete = true
}

func (g *Division) Complete() bool {
	return g.complete
}

// Current is the chamber being subdivided.
func (g *Division) Current() Chamber {
	return g.current
}

// Pending returns a copy of the chambers waiting to be divided.
func (g *Division) Pending() []Chamber {
	return append([]Chamber(nil), g.todo...)
}

func (g *Division) ScanningRegion(cellPixels int) model.Rect {
	return g.current.Rect().Scale(cellPixels)
}

func (g *Division) drawBorder() {
	size := g.grid.Size()
	for i := 0; i < size; i++ {
		g.grid.SetWall(g.grid.At(i, 0), model.Up, true)
		g.grid.SetWall(g.grid.At(i, size-1), model.Down, true)
		g.grid.SetWall(g.grid.At(0, i), model.Left, true)
		g.grid.SetWall(g.grid.At(size-1, i), model.Right, true)
	}
}

// divide cuts c along a random interior line, leaving one random gap, and
// returns the two halves.
func (g *Division) divide(c Chamber) (Chamber, Chamber, bool) {
	if !c.Divisible() {
		return Chamber{}, Chamber{}, false
	}
	if chooseOrientation(c.Width, c.Height, g.rng) == HORIZONTAL {
		first, second := g.divideHorizontally(c)
		return first, second, true
	}
	first, second := g.divideVertically(c)
	return first, second, true
}

func (g *Division) divideHorizontally(c Chamber) (Chamber, Chamber) {
	dividing := c.Col + g.rng.Intn(c.Width-1)
	gap := c.Row + g.rng.Intn(c.Height)
	for k := 0; k < c.Height; k++ {
		if c.Row+k == gap {
			continue
		}
		g.grid.SetWall(g.grid.At(dividing, c.Row+k), model.Right, true)
	}
	return Chamber{Col: c.Col, Row: c.Row, Width: dividing - c.Col + 1, Height: c.Height},
		Chamber{Col: dividing + 1, Row: c.Row, Width: c.Col + c.Width - dividing - 1, Height: c.Height}
}

func (g *Division) divideVertically(c Chamber) (Chamber, Chamber) {
	dividing := c.Row + g.rng.Intn(c.Height-1)
	gap := c.Col + g.rng.Intn(c.Width)
	for k := 0; k < c.Width; k++ {
		if c.Col+k == gap {
			continue
		}
		g.grid.SetWall(g.grid.At(c.Col+k, dividing), model.Down, true)
	}
	return Chamber{Col: c.Col, Row: c.Row, Width: c.Width, Height: dividing - c.Row + 1},
		Chamber{Col: c.Col, Row: dividing + 1, Width: c.Width, Height: c.Row + c.Height - dividing - 1}
}

// chooseOrientation cuts across the longer side; square chambers pick at
// random.
func chooseOrientation(width, height int, rng *rand.Rand) Orientation {
	switch {
	case width < height:
		return VERTICAL
	case height < width:
		return HORIZONTAL
	case rng.Intn(2) == 0:
		return HORIZONTAL
	default:
		return VERTICAL
	}
}
