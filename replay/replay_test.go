package replay

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/mazewalk/generator"
	"github.com/zucenko/mazewalk/model"
)

// liveRun plays random key presses on a generated maze the way the game does:
// rejected moves leave no trace, accepted ones are logged.
func liveRun(t *testing.T, seed int64, size, presses int) (Level, []*model.Cell) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	grid := generator.NewGrid(generator.DEPTH_FIRST, size)
	generator.Run(generator.New(generator.DEPTH_FIRST, grid, rng))

	at := grid.Start()
	positions := []*model.Cell{at}
	level := Level{Grid: grid}
	for i := 0; i < presses; i++ {
		d := model.Directions[rng.Intn(4)]
		if next := grid.Move(at, d); next != nil {
			at = next
			level.Moves = append(level.Moves, d)
			positions = append(positions, at)
		}
	}
	require.NotEmpty(t, level.Moves)
	return level, positions
}

var maze = `
+-+-+-+
|   | |
+ +-+ +
|     |
+-+ + +
|     |
+-+-+-+
`

func TestStep(t *testing.T) {
	grid := model.MustParse(maze)
	level := Level{Grid: grid, Moves: []model.Direction{
		model.Down, model.Right, model.Right, model.Up, model.Down, model.Down, model.Left,
	}}

	at := grid.Start()
	want := []*model.Cell{
		grid.At(0, 1), grid.At(1, 1), grid.At(2, 1), grid.At(2, 0), grid.At(2, 1), grid.At(2, 2), grid.At(1, 2),
	}
	for cursor, w := range want {
		at = Step(level, at, cursor)
		assert.Same(t, w, at)
	}
	assert.Nil(t, Step(level, at, len(level.Moves)))
}

func TestReplayIsDeterministic(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		level, positions := liveRun(t, seed, 8, 300)
		assert.Equal(t, positions, Trace(level))
		// replaying twice gives the same walk
		assert.Equal(t, Trace(level), Trace(level))
	}
}

func TestPlayerWalksEveryLevel(t *testing.T) {
	first, firstPositions := liveRun(t, 1, 5, 50)
	second, secondPositions := liveRun(t, 2, 6, 50)
	p := NewPlayer(Record{first, second})
	require.Equal(t, 2, p.Levels())
	assert.Same(t, first.Grid.Start(), p.Cell())

	var walked []*model.Cell
	walked = append(walked, p.Cell())
	for p.Level() == 0 {
		p.Step()
		if p.Level() == 0 {
			walked = append(walked, p.Cell())
		}
	}
	assert.Equal(t, firstPositions, walked)
	assert.Same(t, second.Grid, p.Grid())
	assert.Same(t, second.Grid.Start(), p.Cell())
	assert.Equal(t, 0, p.Cursor())

	for !p.Finished() {
		p.Step()
	}
	assert.Same(t, secondPositions[len(secondPositions)-1], p.Cell())
	assert.Equal(t, 1, p.Level())

	// a finished player stays put
	p.Step()
	assert.True(t, p.Finished())
	assert.Same(t, secondPositions[len(secondPositions)-1], p.Cell())
}

func TestPlayerLevelNavigation(t *testing.T) {
	first, _ := liveRun(t, 3, 4, 20)
	second, _ := liveRun(t, 4, 4, 20)
	p := NewPlayer(Record{first, second})

	p.Step()
	p.PrevLevel()
	assert.Equal(t, 0, p.Level(), "first level restarts")
	assert.Equal(t, 0, p.Cursor())
	assert.Same(t, first.Grid.Start(), p.Cell())

	assert.True(t, p.NextLevel())
	assert.Equal(t, 1, p.Level())
	assert.False(t, p.NextLevel())
	assert.Equal(t, 1, p.Level())

	for !p.Finished() {
		p.Step()
	}
	p.PrevLevel()
	assert.False(t, p.Finished())
	assert.Equal(t, 0, p.Level())
	assert.Equal(t, first, p.Current())
}

func TestNewPlayerRejectsEmptyRecord(t *testing.T) {
	assert.Panics(t, func() { NewPlayer(nil) })
}
