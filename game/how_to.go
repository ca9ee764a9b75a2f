package game

import (
	"fmt"

	"github.com/zucenko/mazewalk/config"
	"github.com/zucenko/mazewalk/navigation"
)

type HowTo struct {
	Instructions []string
}

func NewHowTo(cfg config.Game) *HowTo {
	return &HowTo{
		Instructions: []string{
			"Select a maze algorithm: Depth first, Iterative division",
			"Tip: Depth first generated algorithms are easier to complete than iterative division",
			"Watch a unique maze being generated in real time",
			"Navigate the maze from top-left to bottom right to complete the level",
			"Complete the entire game before the countdown in the top-right corner reaches zero",
			fmt.Sprintf("You will initially have %g seconds. Each level up will award you additional %g seconds.",
				cfg.TimeLimit, cfg.TimeBoost),
		},
	}
}

func (h *HowTo) Kind() navigation.Kind {
	return navigation.HOW_TO
}

func (h *HowTo) Update(g *Game, dt float64) {}

func (h *HowTo) HandleInput(g *Game, in Input) {
	if in.Action == CONFIRM {
		g.nav.NavigateBack()
	}
}
