// Package generator builds mazes one step at a time so a driver can render
// the region being scanned on every tick.
package generator

import (
	"fmt"
	"math/rand"

	"github.com/zucenko/mazewalk/model"
)

type Algorithm int

const (
	DEPTH_FIRST Algorithm = iota + 1
	ITERATIVE_DIVISION
)

func (a Algorithm) Name() string {
	switch a {
	case DEPTH_FIRST:
		return "depth-first"
	case ITERATIVE_DIVISION:
		return "iterative-division"
	default:
		return fmt.Sprintf("n/a:%d", a)
	}
}

func (a Algorithm) String() string {
	return a.Name()
}

// InitialWalls reports whether the grid handed to the algorithm starts with
// every wall present (carving) or every wall absent (building).
func (a Algorithm) InitialWalls() bool {
	return a == DEPTH_FIRST
}

// ParseAlgorithm resolves an algorithm from its Name.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range []Algorithm{DEPTH_FIRST, ITERATIVE_DIVISION} {
		if a.Name() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q", s)
}

// Generator is an incremental maze builder. Each Step advances the algorithm
// by one unit of work; once Complete reports true further steps do nothing.
type Generator interface {
	Algorithm() Algorithm
	Step()
	Complete() bool
	// ScanningRegion returns the pixel rectangle currently being processed.
	ScanningRegion(cellPixels int) model.Rect
}

// NewGrid returns a fresh grid with the initial walls alg requires.
func NewGrid(alg Algorithm, size int) *model.Grid {
	return model.NewGrid(size, alg.InitialWalls())
}

// New returns the generator for alg working on grid.
func New(alg Algorithm, grid *model.Grid, rng *rand.Rand) Generator {
	switch alg {
	case DEPTH_FIRST:
		return NewDepthFirst(grid, rng)
	case ITERATIVE_DIVISION:
		return NewDivision(grid, rng)
	default:
		panic(alg)
	}
}

// Run steps g until it completes and returns the number of steps taken.
func Run(g Generator) int {
	steps := 0
	for !g.Complete() {
		g.Step()
		steps++
	}
	return steps
}
