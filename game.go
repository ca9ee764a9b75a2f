package main

import (
	"errors"
	"math/rand"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/zucenko/mazewalk/config"
	"github.com/zucenko/mazewalk/game"
	"github.com/zucenko/mazewalk/model"
	"github.com/zucenko/mazewalk/sound"
)

// SWIPE is the drag distance in pixels that turns a press into a move.
const SWIPE = 30

var errQuit = errors.New("quit")

var KEYS = map[ebiten.Key]game.Action{
	ebiten.KeyUp:    game.UP,
	ebiten.KeyRight: game.RIGHT,
	ebiten.KeyDown:  game.DOWN,
	ebiten.KeyLeft:  game.LEFT,
	ebiten.KeyW:     game.UP,
	ebiten.KeyD:     game.RIGHT,
	ebiten.KeyS:     game.DOWN,
	ebiten.KeyA:     game.LEFT,
	ebiten.KeySpace: game.CONFIRM,
	ebiten.KeyEnter: game.CONFIRM,
	ebiten.KeyR:     game.REPLAY,
}

// StrokeSource represents a input device to provide strokes.
type StrokeSource interface {
	Position() (int, int)
	IsJustReleased() bool
}

// MouseStrokeSource is a StrokeSource implementation of mouse.
type MouseStrokeSource struct{}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// TouchStrokeSource is a StrokeSource implementation of touch.
type TouchStrokeSource struct {
	ID int
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchStrokeSource) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(t.ID)
}

// Stroke follows one press from the moment it starts until it is released
// or dragged far enough to count as a swipe.
type Stroke struct {
	source StrokeSource

	initX int
	initY int

	currentX int
	currentY int

	released bool
}

func NewStroke(source StrokeSource) *Stroke {
	cx, cy := source.Position()
	return &Stroke{
		source:   source,
		initX:    cx,
		initY:    cy,
		currentX: cx,
		currentY: cy,
	}
}

func (s *Stroke) Update() {
	if s.released {
		return
	}
	if s.source.IsJustReleased() {
		s.released = true
		return
	}
	s.currentX, s.currentY = s.source.Position()
}

func (s *Stroke) IsReleased() bool {
	return s.released
}

func (s *Stroke) PositionDiff() (int, int) {
	return s.currentX - s.initX, s.currentY - s.initY
}

// Input turns the stroke into a game input: a swipe becomes a move, a
// release in place becomes a click. ok is false while the stroke is still
// undecided.
func (s *Stroke) Input() (in game.Input, ok bool) {
	dx, dy := s.PositionDiff()
	switch {
	case dx >= SWIPE:
		return game.Key(game.RIGHT), true
	case dx <= -SWIPE:
		return game.Key(game.LEFT), true
	case dy >= SWIPE:
		return game.Key(game.DOWN), true
	case dy <= -SWIPE:
		return game.Key(game.UP), true
	case s.released:
		return game.Click(s.initX, s.initY), true
	}
	return game.Input{}, false
}

// Driver runs the game inside an ebiten window.
type Driver struct {
	Game    *game.Game
	Sounds  *sound.Player
	Tweens  map[*gween.Tween]Action
	Button  *Nine
	Font    font.Face
	Small   font.Face
	strokes map[*Stroke]struct{}

	screen    game.Screen
	player    *model.Cell
	playerX   float64
	playerY   float64
	slide     *gween.Tween
	scanAlpha float64
	dt        float64
}

func NewDriver(cfg *config.Config, sounds *sound.Player) (*Driver, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	const dpi = 72
	face := func(size float64) font.Face {
		return truetype.NewFace(tt, &truetype.Options{
			Size:    size,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
	}
	button, err := NewButtonFrame()
	if err != nil {
		return nil, err
	}
	d := &Driver{
		Game:      game.New(cfg, sounds, rand.New(rand.NewSource(time.Now().UnixNano()))),
		Sounds:    sounds,
		Tweens:    make(map[*gween.Tween]Action),
		Button:    button,
		Font:      face(24),
		Small:     face(15),
		strokes:   map[*Stroke]struct{}{},
		scanAlpha: 1,
		dt:        1 / float64(cfg.Game.TicksPerSecond),
	}
	d.pulseScanner()
	return d, nil
}

func (d *Driver) handleInput() {
	for k, a := range KEYS {
		if inpututil.IsKeyJustPressed(k) {
			d.Game.HandleInput(game.Key(a))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		d.strokes[NewStroke(&MouseStrokeSource{})] = struct{}{}
	}
	for _, id := range inpututil.JustPressedTouchIDs() {
		d.strokes[NewStroke(&TouchStrokeSource{id})] = struct{}{}
	}
	for s := range d.strokes {
		s.Update()
		if in, ok := s.Input(); ok {
			d.Game.HandleInput(in)
			delete(d.strokes, s)
		}
	}
}

// follow keeps the animated player in step with the maze screen.
func (d *Driver) follow() {
	top := d.Game.Top()
	play, ok := top.(*game.MazePlay)
	if top != d.screen {
		d.screen = top
		d.player = nil
	}
	if !ok {
		return
	}
	cp := float64(play.CellPixels())
	x, y := float64(play.Player().Col())*cp, float64(play.Player().Row())*cp
	switch {
	case d.player == nil || play.Phase() == game.CREATING_MAZE:
		d.playerX, d.playerY = x, y
	case d.player != play.Player():
		d.slidePlayer(x, y)
	}
	d.player = play.Player()
}

func (d *Driver) update(screen *ebiten.Image) error {
	d.handleInput()
	if d.Game.Quit() {
		return errQuit
	}
	d.Game.Update(d.dt)
	d.follow()
	d.updateTweens(float32(d.dt))

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	if err := d.draw(screen); err != nil {
		log.Printf("%v", err)
	}
	return nil
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.SetupLogging()

	sounds := sound.New()
	defer sounds.Close()

	driver, err := NewDriver(cfg, sounds)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetMaxTPS(cfg.Game.TicksPerSecond)
	window := cfg.Game.Window
	if err := ebiten.Run(driver.update, window, window, 1, game.GAME_NAME); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
