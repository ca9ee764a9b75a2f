package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/mazewalk/config"
	"github.com/zucenko/mazewalk/generator"
	"github.com/zucenko/mazewalk/model"
	"github.com/zucenko/mazewalk/navigation"
)

type recorder struct {
	pops, warnings int
}

func (r *recorder) Pop()     { r.pops++ }
func (r *recorder) Warning() { r.warnings++ }

func testConfig() *config.Config {
	c := config.Default()
	c.Game.Window = 40
	c.Game.InitialSize = 2
	c.Game.Increment = 1
	c.Game.WinLimit = 4
	c.Game.ReplayInterval = 0.25
	return c
}

func newGame(cfg *config.Config) (*Game, *recorder) {
	rec := &recorder{}
	return New(cfg, rec, rand.New(rand.NewSource(1))), rec
}

// generate ticks until the maze on screen is ready to be played.
func generate(t *testing.T, g *Game) *MazePlay {
	t.Helper()
	m, ok := g.Top().(*MazePlay)
	require.True(t, ok, "maze screen expected, got %s", g.Top().Kind().Name())
	// a pending level reset only happens on the next tick
	for i := 0; i == 0 || m.Phase() == CREATING_MAZE; i++ {
		require.Less(t, i, 10000, "maze never finished")
		g.Update(0.25)
	}
	return m
}

// solve returns the moves of the shortest walk from start to goal.
func solve(grid *model.Grid) []model.Direction {
	type hop struct {
		from *model.Cell
		d    model.Direction
	}
	prev := map[*model.Cell]hop{}
	seen := map[*model.Cell]bool{grid.Start(): true}
	queue := []*model.Cell{grid.Start()}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range model.Directions {
			n := grid.Move(c, d)
			if n == nil || seen[n] {
				continue
			}
			seen[n] = true
			prev[n] = hop{from: c, d: d}
			queue = append(queue, n)
		}
	}
	var path []model.Direction
	for c := grid.Goal(); c != grid.Start(); c = prev[c].from {
		path = append([]model.Direction{prev[c].d}, path...)
	}
	return path
}

func press(g *Game, moves []model.Direction) {
	keys := map[model.Direction]Action{model.Up: UP, model.Right: RIGHT, model.Down: DOWN, model.Left: LEFT}
	for _, d := range moves {
		g.HandleInput(Key(keys[d]))
	}
}

func TestMainMenuLayout(t *testing.T) {
	m := NewMainMenu(600)
	assert.Equal(t, model.Rect{X: 555, Y: 5, W: 40, H: 40}, m.Buttons[BTN_HOW_TO])
	assert.Equal(t, model.Rect{X: 175, Y: 240, W: 250, H: 60}, m.Buttons[BTN_DEPTH_FIRST])
	assert.Equal(t, model.Rect{X: 175, Y: 325, W: 250, H: 60}, m.Buttons[BTN_DIVISION])
	assert.Equal(t, model.Rect{X: 175, Y: 410, W: 250, H: 60}, m.Buttons[BTN_QUIT])

	b, ok := m.ButtonAt(300, 270)
	assert.True(t, ok)
	assert.Equal(t, BTN_DEPTH_FIRST, b)
	_, ok = m.ButtonAt(175, 270)
	assert.False(t, ok, "edges do not count")
	_, ok = m.ButtonAt(10, 10)
	assert.False(t, ok)
}

func TestMainMenuClickStartsGame(t *testing.T) {
	cases := []struct {
		x, y int
		want generator.Algorithm
	}{
		{300, 270, generator.DEPTH_FIRST},
		{300, 355, generator.ITERATIVE_DIVISION},
	}
	for _, tc := range cases {
		t.Run(tc.want.Name(), func(t *testing.T) {
			g, _ := newGame(config.Default())
			g.HandleInput(Click(tc.x, tc.y))
			m, ok := g.Top().(*MazePlay)
			require.True(t, ok)
			assert.Equal(t, tc.want, m.Algorithm())
			assert.Equal(t, 10, m.Size())
			assert.Equal(t, 2, g.Navigation().Len())
		})
	}
}

func TestMainMenuKeyboard(t *testing.T) {
	g, _ := newGame(config.Default())
	menu := g.Top().(*MainMenu)
	assert.Equal(t, BTN_DEPTH_FIRST, menu.Selected)

	g.HandleInput(Key(UP))
	assert.Equal(t, BTN_HOW_TO, menu.Selected)
	g.HandleInput(Key(UP))
	assert.Equal(t, BTN_QUIT, menu.Selected, "selection wraps")
	g.HandleInput(Key(DOWN))
	g.HandleInput(Key(DOWN))
	g.HandleInput(Key(DOWN))
	require.Equal(t, BTN_DIVISION, menu.Selected)

	g.HandleInput(Key(CONFIRM))
	m, ok := g.Top().(*MazePlay)
	require.True(t, ok)
	assert.Equal(t, generator.ITERATIVE_DIVISION, m.Algorithm())
}

func TestMainMenuQuit(t *testing.T) {
	g, _ := newGame(config.Default())
	assert.False(t, g.Quit())
	g.HandleInput(Click(300, 440))
	assert.True(t, g.Quit())
	assert.Equal(t, 1, g.Navigation().Len())
}

func TestHowTo(t *testing.T) {
	g, _ := newGame(config.Default())
	menu := g.Top()
	g.HandleInput(Click(575, 25))

	h, ok := g.Top().(*HowTo)
	require.True(t, ok)
	require.Len(t, h.Instructions, 6)
	assert.Contains(t, h.Instructions[5], "30 seconds")
	assert.Contains(t, h.Instructions[5], "45 seconds")

	g.HandleInput(Key(LEFT))
	assert.Same(t, h, g.Top())
	g.HandleInput(Key(CONFIRM))
	assert.Same(t, menu, g.Top())
}

func TestMazePlayCreatingPhase(t *testing.T) {
	cfg := testConfig()
	g, rec := newGame(cfg)
	g.nav.NavigateTo(navigation.MAZE_PLAY, navigation.Args{Algorithm: generator.DEPTH_FIRST})
	m := g.Top().(*MazePlay)

	g.Update(0.25)
	assert.Equal(t, CREATING_MAZE, m.Phase())
	assert.Equal(t, cfg.Game.TimeLimit, m.Remaining(), "the clock waits for the maze")
	region, ok := m.ScanningRegion()
	assert.True(t, ok)
	assert.Equal(t, 20, region.W)
	assert.True(t, m.CellVisible(m.Grid().Goal()))

	g.HandleInput(Key(DOWN))
	g.HandleInput(Key(RIGHT))
	assert.Same(t, m.Grid().Start(), m.Player(), "no moves while creating")
	assert.Zero(t, rec.pops)

	generate(t, g)
	assert.Equal(t, GAME_STARTED, m.Phase())
	_, ok = m.ScanningRegion()
	assert.False(t, ok)
	assert.Equal(t, cfg.Game.TimeLimit-0.25, m.Remaining())
	assert.Equal(t, int(cfg.Game.TimeLimit)-1, m.RemainingSeconds())
}

func TestMazePlayMovement(t *testing.T) {
	cfg := testConfig()
	cfg.Game.InitialSize = 5
	cfg.Game.WinLimit = 10
	g, rec := newGame(cfg)
	g.nav.NavigateTo(navigation.MAZE_PLAY, navigation.Args{Algorithm: generator.DEPTH_FIRST})
	m := generate(t, g)

	start := m.Grid().Start()
	assert.True(t, m.CellVisible(m.Grid().At(1, 1)))
	assert.False(t, m.CellVisible(m.Grid().At(2, 0)))
	assert.False(t, m.CellVisible(m.Grid().At(0, 2)))

	g.HandleInput(Key(UP))
	g.HandleInput(Key(LEFT))
	assert.Same(t, start, m.Player(), "border moves are rejected")
	assert.Empty(t, m.Footsteps())

	path := solve(m.Grid())
	press(g, path[:1])
	assert.Equal(t, path[:1], m.Footsteps())
	assert.Equal(t, 1, rec.pops)
	assert.NotSame(t, start, m.Player())
	assert.True(t, m.CellVisible(start))
}

func TestLevelUp(t *testing.T) {
	cfg := testConfig()
	g, _ := newGame(cfg)
	g.nav.NavigateTo(navigation.MAZE_PLAY, navigation.Args{Algorithm: generator.ITERATIVE_DIVISION})
	m := generate(t, g)
	grid := m.Grid()
	path := solve(grid)
	press(g, path)
	require.Same(t, grid.Goal(), m.Player())

	before := m.Remaining()
	g.Update(0.25)
	assert.Equal(t, 3, m.Size())
	assert.Equal(t, before-0.25+cfg.Game.TimeBoost, m.Remaining())
	record := m.Record()
	require.Len(t, record, 1)
	assert.Same(t, grid, record[0].Grid)
	assert.Equal(t, path, record[0].Moves)

	g.Update(0.25)
	assert.Equal(t, 3, m.Grid().Size())
	assert.Equal(t, CREATING_MAZE, m.Phase())
	assert.Empty(t, m.Footsteps())
	assert.Same(t, m.Grid().Start(), m.Player())
}

func TestWinAndReplay(t *testing.T) {
	cfg := testConfig()
	g, _ := newGame(cfg)
	menu := g.Top()
	g.nav.NavigateTo(navigation.MAZE_PLAY, navigation.Args{Algorithm: generator.DEPTH_FIRST})

	var paths [][]model.Direction
	for {
		m := generate(t, g)
		path := solve(m.Grid())
		paths = append(paths, path)
		press(g, path)
		g.Update(0.25)
		if _, over := g.Top().(*GameOver); over {
			break
		}
		require.Less(t, len(paths), 5)
	}

	over := g.Top().(*GameOver)
	assert.True(t, over.Win)
	assert.Equal(t, "YOU WIN!!!", over.Heading())
	require.Len(t, over.Record, 2)
	assert.Equal(t, 2, over.Record[0].Grid.Size())
	assert.Equal(t, 3, over.Record[1].Grid.Size())
	assert.Equal(t, paths[1], over.Record[1].Moves)

	g.HandleInput(Key(REPLAY))
	r, ok := g.Top().(*GameReplay)
	require.True(t, ok)
	g.Update(0.125)
	assert.Equal(t, 0, r.Cursor())
	g.Update(0.125)
	assert.Equal(t, 1, r.Cursor())

	g.HandleInput(Key(RIGHT))
	assert.Equal(t, 1, r.Level())
	assert.Equal(t, 0, r.Cursor())
	g.HandleInput(Key(LEFT))
	assert.Equal(t, 0, r.Level())

	for i := 0; !r.Finished(); i++ {
		require.Less(t, i, 1000)
		g.Update(0.25)
	}
	assert.Equal(t, 1, r.Level())
	assert.Same(t, over.Record[1].Grid.Goal(), r.Cell())

	g.HandleInput(Key(CONFIRM))
	assert.Same(t, over, g.Top())
	g.HandleInput(Key(CONFIRM))
	assert.Same(t, menu, g.Top())
	assert.Equal(t, 1, g.Navigation().Len())
}

func TestTimeoutWithWarnings(t *testing.T) {
	cfg := testConfig()
	cfg.Game.TimeLimit = 12
	g, rec := newGame(cfg)
	g.nav.NavigateTo(navigation.MAZE_PLAY, navigation.Args{Algorithm: generator.DEPTH_FIRST})
	generate(t, g)
	assert.Zero(t, rec.warnings)

	for i := 0; ; i++ {
		require.Less(t, i, 1000)
		if _, over := g.Top().(*GameOver); over {
			break
		}
		g.Update(0.25)
	}
	// one warning per second from 10 down to 0
	assert.Equal(t, 11, rec.warnings)

	over := g.Top().(*GameOver)
	assert.False(t, over.Win)
	assert.Equal(t, "YOU LOST :(", over.Heading())
	require.Len(t, over.Record, 1)
	assert.Empty(t, over.Record[0].Moves)
}

func TestActionDirection(t *testing.T) {
	for a, want := range map[Action]model.Direction{UP: model.Up, RIGHT: model.Right, DOWN: model.Down, LEFT: model.Left} {
		d, ok := a.Direction()
		assert.True(t, ok, a.Name())
		assert.Equal(t, want, d)
	}
	_, ok := CONFIRM.Direction()
	assert.False(t, ok)
	assert.Equal(t, "N/A(42)", Action(42).Name())
}

func TestNilSoundsAreSilent(t *testing.T) {
	g := New(testConfig(), nil, rand.New(rand.NewSource(2)))
	g.nav.NavigateTo(navigation.MAZE_PLAY, navigation.Args{Algorithm: generator.DEPTH_FIRST})
	m := generate(t, g)
	assert.NotPanics(t, func() { press(g, solve(m.Grid())) })
}
