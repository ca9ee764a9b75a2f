package game

import (
	"fmt"
	"math"
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazewalk/config"
	"github.com/zucenko/mazewalk/generator"
	"github.com/zucenko/mazewalk/model"
	"github.com/zucenko/mazewalk/navigation"
	"github.com/zucenko/mazewalk/replay"
)

type Phase int

const (
	CREATING_MAZE Phase = iota
	GAME_STARTED
)

func (p Phase) Name() string {
	switch p {
	case CREATING_MAZE:
		return "CREATING_MAZE"
	case GAME_STARTED:
		return "GAME_STARTED"
	default:
		return fmt.Sprintf("N/A(%d)", p)
	}
}

// MazePlay generates a maze one step per tick, then lets the player walk it
// against the clock. Reaching the goal grows the next maze.
type MazePlay struct {
	cfg        config.Game
	rng        *rand.Rand
	algorithm  generator.Algorithm
	size       int
	remaining  float64
	needsReset bool
	footsteps  []model.Direction
	record     replay.Record
	gen        generator.Generator
	grid       *model.Grid
	player     *model.Cell
	phase      Phase
	// seconds until the next warning may sound
	warnIn float64
	over   bool
}

func NewMazePlay(cfg config.Game, alg generator.Algorithm, rng *rand.Rand) *MazePlay {
	m := &MazePlay{
		cfg:       cfg,
		rng:       rng,
		algorithm: alg,
		size:      cfg.InitialSize,
		remaining: cfg.TimeLimit,
	}
	m.reset()
	return m
}

func (m *MazePlay) Kind() navigation.Kind {
	return navigation.MAZE_PLAY
}

func (m *MazePlay) reset() {
	m.grid = generator.NewGrid(m.algorithm, m.size)
	m.gen = generator.New(m.algorithm, m.grid, m.rng)
	m.footsteps = make([]model.Direction, 0)
	m.player = m.grid.Start()
	m.phase = CREATING_MAZE
	m.needsReset = false
}

func (m *MazePlay) Update(g *Game, dt float64) {
	if m.over {
		return
	}
	if m.needsReset {
		m.reset()
	}

	m.gen.Step()
	if m.phase == CREATING_MAZE && m.gen.Complete() {
		m.phase = GAME_STARTED
		log.WithFields(log.Fields{"size": m.size, "algorithm": m.algorithm.Name()}).Debug("maze ready")
	}

	if m.phase == GAME_STARTED {
		m.remaining -= dt
	}
	if m.remaining <= m.cfg.WarningThreshold {
		if m.warnIn <= 0 {
			g.sounds.Warning()
			m.warnIn += 1
		}
		m.warnIn -= dt
	} else {
		m.warnIn = 0
	}
	if m.remaining <= 0 {
		m.finishLevel()
		m.over = true
		log.WithFields(log.Fields{"size": m.size, "levels": len(m.record)}).Info("time is up")
		g.nav.NavigateTo(navigation.GAME_OVER, navigation.Args{Record: m.Record(), Win: false})
		return
	}

	if m.player == m.grid.Goal() {
		m.levelUp(g)
	}
}

func (m *MazePlay) finishLevel() {
	m.record = append(m.record, replay.Level{Grid: m.grid, Moves: m.footsteps})
}

func (m *MazePlay) levelUp(g *Game) {
	m.finishLevel()
	m.size += m.cfg.Increment
	log.WithFields(log.Fields{"size": m.size, "remaining": m.remaining}).Info("level up")
	if m.size >= m.cfg.WinLimit {
		m.over = true
		g.nav.NavigateTo(navigation.GAME_OVER, navigation.Args{Record: m.Record(), Win: true})
		return
	}
	m.remaining += m.cfg.TimeBoost
	m.needsReset = true
}

// HandleInput moves the player once the maze is ready. Moves into a wall or
// off the grid are ignored.
func (m *MazePlay) HandleInput(g *Game, in Input) {
	if m.phase != GAME_STARTED || m.over {
		return
	}
	d, ok := in.Action.Direction()
	if !ok {
		return
	}
	next := m.grid.Move(m.player, d)
	if next == nil {
		return
	}
	g.sounds.Pop()
	m.player = next
	m.footsteps = append(m.footsteps, d)
}

func (m *MazePlay) Grid() *model.Grid { return m.grid }
func (m *MazePlay) Player() *model.Cell { return m.player }
func (m *MazePlay) Phase() Phase { return m.phase }
func (m *MazePlay) Algorithm() generator.Algorithm { return m.algorithm }
func (m *MazePlay) Size() int { return m.size }
func (m *MazePlay) Remaining() float64 { return m.remaining }
func (m *MazePlay) Footsteps() []model.Direction { return m.footsteps }

// Record returns a copy of the finished levels.
func (m *MazePlay) Record() replay.Record {
	return append(replay.Record(nil), m.record...)
}

// RemainingSeconds is the countdown shown to the player.
func (m *MazePlay) RemainingSeconds() int {
	if m.remaining <= 0 {
		return 0
	}
	return int(math.Floor(m.remaining))
}

// CellPixels is the side of one cell when the grid fills the window.
func (m *MazePlay) CellPixels() int {
	return m.cfg.Window / m.grid.Size()
}

// ScanningRegion is the pixel rectangle the generator is working on. It is
// only shown while the maze is being created.
func (m *MazePlay) ScanningRegion() (model.Rect, bool) {
	if m.phase != CREATING_MAZE {
		return model.Rect{}, false
	}
	return m.gen.ScanningRegion(m.CellPixels()), true
}

// CellVisible reports whether c is drawn: every cell while creating, then
// only the cells close to the player.
func (m *MazePlay) CellVisible(c *model.Cell) bool {
	if m.phase == CREATING_MAZE {
		return true
	}
	return abs(c.Col()-m.player.Col()) < m.cfg.VisibleZone &&
		abs(c.Row()-m.player.Row()) < m.cfg.VisibleZone
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
