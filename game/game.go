// Package game holds the screens of the maze game and the rules that drive
// them. It knows nothing about windows or terminals: a driver feeds it ticks
// and inputs and reads the active screen back for drawing.
package game

import (
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazewalk/config"
	"github.com/zucenko/mazewalk/generator"
	"github.com/zucenko/mazewalk/model"
	"github.com/zucenko/mazewalk/navigation"
)

const GAME_NAME = "Maze Game"

type Action int

const (
	NONE Action = iota
	UP
	RIGHT
	DOWN
	LEFT
	CONFIRM
	REPLAY
	CLICK
)

func (a Action) Name() string {
	switch a {
	case NONE:
		return "NONE"
	case UP:
		return "UP"
	case RIGHT:
		return "RIGHT"
	case DOWN:
		return "DOWN"
	case LEFT:
		return "LEFT"
	case CONFIRM:
		return "CONFIRM"
	case REPLAY:
		return "REPLAY"
	case CLICK:
		return "CLICK"
	default:
		return fmt.Sprintf("N/A(%d)", a)
	}
}

// Direction maps the arrow actions to maze directions.
func (a Action) Direction() (model.Direction, bool) {
	switch a {
	case UP:
		return model.Up, true
	case RIGHT:
		return model.Right, true
	case DOWN:
		return model.Down, true
	case LEFT:
		return model.Left, true
	}
	return 0, false
}

// Input is a discrete user event. X and Y are set for CLICK only.
type Input struct {
	Action Action
	X, Y   int
}

func Key(a Action) Input {
	return Input{Action: a}
}

func Click(x, y int) Input {
	return Input{Action: CLICK, X: x, Y: y}
}

// Sounds plays the two game effects. Implementations must not block.
type Sounds interface {
	Pop()
	Warning()
}

type Silent struct{}

func (Silent) Pop()     {}
func (Silent) Warning() {}

// Screen is the state of one entry of the navigation stack.
type Screen interface {
	navigation.State
	Update(g *Game, dt float64)
	HandleInput(g *Game, in Input)
}

type Game struct {
	cfg    *config.Config
	nav    *navigation.Stack[Screen]
	sounds Sounds
	rng    *rand.Rand
	logger *log.Entry
	quit   bool
}

func New(cfg *config.Config, sounds Sounds, rng *rand.Rand) *Game {
	if sounds == nil {
		sounds = Silent{}
	}
	g := &Game{
		cfg:    cfg,
		sounds: sounds,
		rng:    rng,
		logger: log.WithField("game", GAME_NAME),
	}
	g.nav = navigation.NewStack(navigation.MAIN_MENU, map[navigation.Kind]navigation.Setup[Screen]{
		navigation.MAIN_MENU: func(navigation.Args) Screen {
			return NewMainMenu(cfg.Game.Window)
		},
		navigation.MAZE_PLAY: func(args navigation.Args) Screen {
			return NewMazePlay(cfg.Game, args.Algorithm, g.rng)
		},
		navigation.HOW_TO: func(navigation.Args) Screen {
			return NewHowTo(cfg.Game)
		},
		navigation.GAME_OVER: func(args navigation.Args) Screen {
			return NewGameOver(args.Record, args.Win)
		},
		navigation.GAME_REPLAY: func(args navigation.Args) Screen {
			return NewGameReplay(args.Record, cfg.Game.ReplayInterval)
		},
	})
	return g
}

// Update advances the active screen by dt seconds.
func (g *Game) Update(dt float64) {
	g.Top().Update(g, dt)
}

func (g *Game) HandleInput(in Input) {
	top := g.Top()
	g.logger.WithFields(log.Fields{"screen": top.Kind().Name(), "action": in.Action.Name()}).Trace("input")
	top.HandleInput(g, in)
}

func (g *Game) Top() Screen {
	return g.nav.Top().State
}

func (g *Game) Navigation() *navigation.Stack[Screen] {
	return g.nav
}

func (g *Game) Config() *config.Config {
	return g.cfg
}

// Quit reports whether the player asked to leave from the main menu.
func (g *Game) Quit() bool {
	return g.quit
}

func (g *Game) play(alg generator.Algorithm) {
	g.logger.WithField("algorithm", alg.Name()).Info("new game")
	g.nav.NavigateTo(navigation.MAZE_PLAY, navigation.Args{Algorithm: alg})
}
