package server

import (
	"github.com/zucenko/mazewalk/model"
)

// Tick advances the generator by one step and reports the cells it changed.
// The scanning region is in cells.
func (gs *GameSession) Tick() model.Frame {
	before := visibles(gs.Grid)
	gs.Generator.Step()
	gs.Steps++
	return model.Frame{
		Step:  gs.Steps,
		Scan:  gs.Generator.ScanningRegion(1),
		Cells: changed(gs.Grid, before),
	}
}

func visibles(g *model.Grid) []model.Visibilize {
	all := make([]model.Visibilize, 0, g.Size()*g.Size())
	g.Each(func(c *model.Cell) {
		all = append(all, model.Visibilizer(c))
	})
	return all
}

func changed(g *model.Grid, before []model.Visibilize) []model.Visibilize {
	diff := make([]model.Visibilize, 0)
	i := 0
	g.Each(func(c *model.Cell) {
		if now := model.Visibilizer(c); now != before[i] {
			diff = append(diff, now)
		}
		i++
	})
	return diff
}
