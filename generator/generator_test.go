package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/mazewalk/model"
)

// openInteriorEdges counts adjacent cell pairs with no wall between them.
func openInteriorEdges(g *model.Grid) int {
	open := 0
	g.Each(func(c *model.Cell) {
		for _, d := range []model.Direction{model.Right, model.Down} {
			if g.Neighbour(c, d) != nil && !c.Wall(d) {
				open++
			}
		}
	})
	return open
}

// reachable counts the cells reachable from the start through open walls.
func reachable(g *model.Grid) int {
	seen := map[*model.Cell]bool{g.Start(): true}
	queue := []*model.Cell{g.Start()}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range model.Directions {
			if n := g.Move(c, d); n != nil && !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen)
}

func assertSymmetric(t *testing.T, g *model.Grid) {
	t.Helper()
	g.Each(func(c *model.Cell) {
		for _, d := range model.Directions {
			if n := g.Neighbour(c, d); n != nil {
				require.Equal(t, c.Wall(d), n.Wall(d.Opposite()), "wall %v of %v", d, c)
			}
		}
	})
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range []Algorithm{DEPTH_FIRST, ITERATIVE_DIVISION} {
		got, err := ParseAlgorithm(a.Name())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := ParseAlgorithm("prim")
	assert.Error(t, err)
	assert.Equal(t, "n/a:9", Algorithm(9).Name())
}

func TestNewGridInitialWalls(t *testing.T) {
	assert.True(t, NewGrid(DEPTH_FIRST, 3).At(1, 1).Wall(model.Up))
	assert.False(t, NewGrid(ITERATIVE_DIVISION, 3).At(1, 1).Wall(model.Up))
}

func TestDepthFirstProperties(t *testing.T) {
	for size := 2; size <= 12; size++ {
		for seed := int64(1); seed <= 3; seed++ {
			grid := NewGrid(DEPTH_FIRST, size)
			g := New(DEPTH_FIRST, grid, rand.New(rand.NewSource(seed)))
			steps := 0
			for !g.Complete() {
				g.Step()
				steps++
				assertSymmetric(t, grid)
				require.LessOrEqual(t, steps, 2*size*size, "size %d seed %d did not finish", size, seed)
			}

			// every forward move is undone by exactly one backtrack
			assert.Equal(t, 2*size*size-1, steps)
			grid.Each(func(c *model.Cell) {
				assert.True(t, c.Visited, "cell %v not visited", c)
			})
			assert.Equal(t, size*size-1, openInteriorEdges(grid), "spanning tree")
			assert.Equal(t, size*size, reachable(grid))
		}
	}
}

func TestDepthFirstTwoByTwo(t *testing.T) {
	grid := NewGrid(DEPTH_FIRST, 2)
	g := NewDepthFirst(grid, rand.New(rand.NewSource(7)))
	assert.Equal(t, 7, Run(g))
	assert.Equal(t, 3, openInteriorEdges(grid))
	grid.Each(func(c *model.Cell) {
		assert.True(t, c.Visited)
		// outer walls are never carved
		for _, d := range model.Directions {
			if grid.Neighbour(c, d) == nil {
				assert.True(t, c.Wall(d))
			}
		}
	})
}

func TestDepthFirstScanningRegion(t *testing.T) {
	grid := NewGrid(DEPTH_FIRST, 4)
	g := NewDepthFirst(grid, rand.New(rand.NewSource(1)))
	assert.Equal(t, model.Rect{X: 0, Y: 0, W: 20, H: 20}, g.ScanningRegion(20))

	g.Step()
	c := g.Current()
	require.NotNil(t, c)
	assert.Equal(t, 1, g.Depth())
	assert.Equal(t, model.Rect{X: c.Col() * 20, Y: c.Row() * 20, W: 20, H: 20}, g.ScanningRegion(20))
}

func TestDivisionProperties(t *testing.T) {
	for size := 2; size <= 12; size++ {
		for seed := int64(1); seed <= 3; seed++ {
			grid := NewGrid(ITERATIVE_DIVISION, size)
			g := New(ITERATIVE_DIVISION, grid, rand.New(rand.NewSource(seed))).(*Division)
			steps := 0
			for !g.Complete() {
				g.Step()
				steps++
				assertSymmetric(t, grid)
				require.LessOrEqual(t, steps, 4*size*size, "size %d seed %d did not finish", size, seed)
			}

			assert.Empty(t, g.Pending())
			assert.False(t, g.Current().Divisible())
			for i := 0; i < size; i++ {
				assert.True(t, grid.At(i, 0).Wall(model.Up))
				assert.True(t, grid.At(i, size-1).Wall(model.Down))
				assert.True(t, grid.At(0, i).Wall(model.Left))
				assert.True(t, grid.At(size-1, i).Wall(model.Right))
			}
			assert.Equal(t, size*size, reachable(grid))
			assert.Equal(t, size*size-1, openInteriorEdges(grid), "one gap per cut leaves a tree")
		}
	}
}

func TestDivisionTwoByTwo(t *testing.T) {
	grid := NewGrid(ITERATIVE_DIVISION, 2)
	g := NewDivision(grid, rand.New(rand.NewSource(3)))

	g.Step()
	assert.False(t, g.Complete())
	assert.Len(t, g.Pending(), 1)
	// a 2x2 chamber takes a single cut with one wall segment next to its gap
	assert.Equal(t, 3, openInteriorEdges(grid))

	g.Step()
	assert.False(t, g.Complete())
	assert.Empty(t, g.Pending())

	g.Step()
	assert.True(t, g.Complete())
}

func TestDivisionScanningRegion(t *testing.T) {
	grid := NewGrid(ITERATIVE_DIVISION, 6)
	g := NewDivision(grid, rand.New(rand.NewSource(1)))
	assert.Equal(t, model.Rect{X: 0, Y: 0, W: 60, H: 60}, g.ScanningRegion(10))

	g.Step()
	c := g.Current()
	assert.Equal(t, model.Rect{X: c.Col * 10, Y: c.Row * 10, W: c.Width * 10, H: c.Height * 10}, g.ScanningRegion(10))
	pending := g.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, 36, c.Width*c.Height+pending[0].Width*pending[0].Height)
}

func TestStepAfterCompleteIsNoop(t *testing.T) {
	for _, alg := range []Algorithm{DEPTH_FIRST, ITERATIVE_DIVISION} {
		t.Run(alg.Name(), func(t *testing.T) {
			grid := NewGrid(alg, 7)
			g := New(alg, grid, rand.New(rand.NewSource(11)))
			Run(g)
			before := model.Format(grid)
			region := g.ScanningRegion(8)
			for i := 0; i < 5; i++ {
				g.Step()
			}
			assert.True(t, g.Complete())
			assert.Equal(t, before, model.Format(grid))
			assert.Equal(t, region, g.ScanningRegion(8))
		})
	}
}

func TestSameSeedSameMaze(t *testing.T) {
	for _, alg := range []Algorithm{DEPTH_FIRST, ITERATIVE_DIVISION} {
		a, b := NewGrid(alg, 9), NewGrid(alg, 9)
		Run(New(alg, a, rand.New(rand.NewSource(42))))
		Run(New(alg, b, rand.New(rand.NewSource(42))))
		assert.Equal(t, model.Format(a), model.Format(b), alg.Name())
	}
}

func TestChooseOrientation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, HORIZONTAL, chooseOrientation(5, 3, rng))
	assert.Equal(t, VERTICAL, chooseOrientation(3, 5, rng))
	seen := map[Orientation]bool{}
	for i := 0; i < 64; i++ {
		seen[chooseOrientation(4, 4, rng)] = true
	}
	assert.Len(t, seen, 2)
}
