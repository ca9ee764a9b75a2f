package game

import (
	"fmt"

	"github.com/zucenko/mazewalk/generator"
	"github.com/zucenko/mazewalk/model"
	"github.com/zucenko/mazewalk/navigation"
)

const (
	BUTTON_WIDTH  = 250
	BUTTON_HEIGHT = 60
	HOW_TO_SIZE   = 40
)

type Button int

const (
	BTN_HOW_TO Button = iota
	BTN_DEPTH_FIRST
	BTN_DIVISION
	BTN_QUIT
	BUTTON_COUNT
)

func (b Button) Name() string {
	switch b {
	case BTN_HOW_TO:
		return "BTN_HOW_TO"
	case BTN_DEPTH_FIRST:
		return "BTN_DEPTH_FIRST"
	case BTN_DIVISION:
		return "BTN_DIVISION"
	case BTN_QUIT:
		return "BTN_QUIT"
	default:
		return fmt.Sprintf("N/A(%d)", b)
	}
}

func (b Button) Label() string {
	switch b {
	case BTN_HOW_TO:
		return "?"
	case BTN_DEPTH_FIRST:
		return "Depth-first"
	case BTN_DIVISION:
		return "Iterative Division"
	case BTN_QUIT:
		return "Quit"
	}
	return ""
}

type MainMenu struct {
	Buttons  [BUTTON_COUNT]model.Rect
	Selected Button
}

func NewMainMenu(window int) *MainMenu {
	left := (window - BUTTON_WIDTH) / 2
	return &MainMenu{
		Buttons: [BUTTON_COUNT]model.Rect{
			BTN_HOW_TO:      {X: window - HOW_TO_SIZE - 5, Y: 5, W: HOW_TO_SIZE, H: HOW_TO_SIZE},
			BTN_DEPTH_FIRST: {X: left, Y: 240, W: BUTTON_WIDTH, H: BUTTON_HEIGHT},
			BTN_DIVISION:    {X: left, Y: 325, W: BUTTON_WIDTH, H: BUTTON_HEIGHT},
			BTN_QUIT:        {X: left, Y: 410, W: BUTTON_WIDTH, H: BUTTON_HEIGHT},
		},
		Selected: BTN_DEPTH_FIRST,
	}
}

func (m *MainMenu) Kind() navigation.Kind {
	return navigation.MAIN_MENU
}

func (m *MainMenu) Update(g *Game, dt float64) {}

// ButtonAt returns the button strictly containing the point.
func (m *MainMenu) ButtonAt(x, y int) (Button, bool) {
	for b, r := range m.Buttons {
		if r.Contains(x, y) {
			return Button(b), true
		}
	}
	return 0, false
}

func (m *MainMenu) HandleInput(g *Game, in Input) {
	switch in.Action {
	case CLICK:
		if b, ok := m.ButtonAt(in.X, in.Y); ok {
			m.Selected = b
			m.activate(g, b)
		}
	case UP:
		m.Selected = (m.Selected + BUTTON_COUNT - 1) % BUTTON_COUNT
	case DOWN:
		m.Selected = (m.Selected + 1) % BUTTON_COUNT
	case CONFIRM:
		m.activate(g, m.Selected)
	}
}

func (m *MainMenu) activate(g *Game, b Button) {
	switch b {
	case BTN_HOW_TO:
		g.nav.NavigateTo(navigation.HOW_TO, navigation.Args{})
	case BTN_DEPTH_FIRST:
		g.play(generator.DEPTH_FIRST)
	case BTN_DIVISION:
		g.play(generator.ITERATIVE_DIVISION)
	case BTN_QUIT:
		g.logger.Info("quit requested")
		g.quit = true
	}
}
