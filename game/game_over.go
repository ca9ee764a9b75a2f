package game

import (
	"github.com/zucenko/mazewalk/navigation"
	"github.com/zucenko/mazewalk/replay"
)

type GameOver struct {
	Record replay.Record
	Win    bool
}

func NewGameOver(record replay.Record, win bool) *GameOver {
	return &GameOver{Record: record, Win: win}
}

func (o *GameOver) Kind() navigation.Kind {
	return navigation.GAME_OVER
}

func (o *GameOver) Heading() string {
	if o.Win {
		return "YOU WIN!!!"
	}
	return "YOU LOST :("
}

func (o *GameOver) Update(g *Game, dt float64) {}

func (o *GameOver) HandleInput(g *Game, in Input) {
	switch in.Action {
	case CONFIRM:
		g.nav.NavigateBackTo(navigation.MAIN_MENU)
	case REPLAY:
		g.nav.NavigateTo(navigation.GAME_REPLAY, navigation.Args{Record: o.Record})
	}
}
