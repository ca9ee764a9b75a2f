// Package replay re-walks recorded player movements over the mazes they were
// recorded on.
package replay

import (
	"github.com/zucenko/mazewalk/model"
)

// Level pairs a generated maze with the successful moves made on it.
type Level struct {
	Grid  *model.Grid
	Moves []model.Direction
}

// Record accumulates levels in the order they were played.
type Record []Level

// Step re-derives the player cell after the move at cursor, starting from at.
// It returns nil once the cursor has reached the end of the log.
func Step(level Level, at *model.Cell, cursor int) *model.Cell {
	if cursor >= len(level.Moves) {
		return nil
	}
	return level.Grid.Move(at, level.Moves[cursor])
}

// Trace returns every position of a level's replay, start cell included.
func Trace(level Level) []*model.Cell {
	at := level.Grid.Start()
	path := []*model.Cell{at}
	for cursor := 0; ; cursor++ {
		next := Step(level, at, cursor)
		if next == nil {
			return path
		}
		at = next
		path = append(path, at)
	}
}

// Player walks a record one move at a time.
type Player struct {
	record   Record
	level    int
	cursor   int
	cell     *model.Cell
	finished bool
}

func NewPlayer(record Record) *Player {
	if len(record) == 0 {
		panic("replay: empty record")
	}
	return &Player{
		record: record,
		cell:   record[0].Grid.Start(),
	}
}

func (p *Player) Level() int { return p.level }
func (p *Player) Levels() int { return len(p.record) }
func (p *Player) Cursor() int { return p.cursor }
func (p *Player) Cell() *model.Cell { return p.cell }
func (p *Player) Grid() *model.Grid { return p.record[p.level].Grid }
func (p *Player) Finished() bool { return p.finished }
func (p *Player) Current() Level { return p.record[p.level] }

// Step applies the next logged move. At the end of a level it moves on to the
// next one; after the last level the player is finished.
func (p *Player) Step() {
	next := Step(p.record[p.level], p.cell, p.cursor)
	if next == nil {
		p.finished = !p.NextLevel()
		return
	}
	p.cell = next
	p.cursor++
}

// NextLevel restarts the replay on the following level. It reports false when
// there is no following level.
func (p *Player) NextLevel() bool {
	if p.level == len(p.record)-1 {
		return false
	}
	p.level++
	p.restart()
	return true
}

// PrevLevel restarts the replay on the previous level, or on the first level
// when already there.
func (p *Player) PrevLevel() {
	p.finished = false
	if p.level > 0 {
		p.level--
	}
	p.restart()
}

func (p *Player) restart() {
	p.cursor = 0
	p.cell = p.record[p.level].Grid.Start()
}
