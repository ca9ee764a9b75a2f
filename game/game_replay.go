package game

import (
	"github.com/zucenko/mazewalk/navigation"
	"github.com/zucenko/mazewalk/replay"
)

// GameReplay re-walks the recorded levels, one move per interval.
type GameReplay struct {
	*replay.Player
	interval float64
	elapsed  float64
}

func NewGameReplay(record replay.Record, interval float64) *GameReplay {
	return &GameReplay{
		Player:   replay.NewPlayer(record),
		interval: interval,
	}
}

func (r *GameReplay) Kind() navigation.Kind {
	return navigation.GAME_REPLAY
}

func (r *GameReplay) Update(g *Game, dt float64) {
	r.elapsed += dt
	for r.elapsed >= r.interval {
		r.elapsed -= r.interval
		if r.Finished() {
			continue
		}
		r.Step()
	}
}

func (r *GameReplay) HandleInput(g *Game, in Input) {
	switch in.Action {
	case CONFIRM:
		g.nav.NavigateBack()
	case RIGHT:
		r.NextLevel()
	case LEFT:
		r.PrevLevel()
	}
}
