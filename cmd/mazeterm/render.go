package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/zucenko/mazewalk/game"
	"github.com/zucenko/mazewalk/model"
	"github.com/zucenko/mazewalk/palette"
	"github.com/zucenko/mazewalk/replay"
)

const (
	RUNE_CORNER     = '+'
	RUNE_WALL_H     = '-'
	RUNE_WALL_V     = '|'
	RUNE_PLAYER     = '@'
	RUNE_GOAL       = '$'
	RUNE_FOOTSTEP   = '.'
	MAZE_TOP        = 2
	HOW_TO_INDENT   = 2
	MENU_FIRST_LINE = 4
)

var (
	styleText    = tcell.StyleDefault.Foreground(Paint(palette.COLOR_LIGHT_GRAY))
	styleAccent  = tcell.StyleDefault.Foreground(Paint(palette.COLOR_LIGHT_GREEN))
	styleAlert   = tcell.StyleDefault.Foreground(Paint(palette.COLOR_PLAYER))
	styleScanner = tcell.StyleDefault.Background(tcell.ColorPurple)
	stylePlayer  = tcell.StyleDefault.Foreground(Paint(palette.COLOR_PLAYER)).Bold(true)
	styleTrace   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Render draws the top screen of g onto a w×h canvas.
func Render(g *game.Game, w, h int) *Canvas {
	c := NewCanvas(w, h)
	switch s := g.Top().(type) {
	case *game.MainMenu:
		renderMainMenu(c, s)
	case *game.HowTo:
		renderHowTo(c, s)
	case *game.MazePlay:
		renderMazePlay(c, s, g.Config().Game.WarningThreshold)
	case *game.GameOver:
		renderGameOver(c, s)
	case *game.GameReplay:
		renderReplay(c, s)
	}
	return c
}

func renderMainMenu(c *Canvas, m *game.MainMenu) {
	c.Centered(1, game.GAME_NAME, styleAccent)
	line := MENU_FIRST_LINE
	for b := game.Button(0); b < game.BUTTON_COUNT; b++ {
		label := b.Label()
		style := styleText
		if b == m.Selected {
			label = "> " + label + " <"
			style = styleAccent
		}
		if b == game.BTN_HOW_TO {
			c.Text(c.W-len([]rune(label))-1, 0, label, style)
			continue
		}
		c.Centered(line, label, style)
		line += 2
	}
	c.Centered(line+1, "up/down: select  space: confirm  q: quit", styleText)
}

// wrap breaks s into lines of at most width runes.
func wrap(s string, width int) []string {
	lines := make([]string, 0)
	line := ""
	for _, word := range strings.Fields(s) {
		switch {
		case line == "":
			line = word
		case len([]rune(line))+1+len([]rune(word)) > width:
			lines = append(lines, line)
			line = word
		default:
			line += " " + word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func renderHowTo(c *Canvas, h *game.HowTo) {
	c.Centered(0, "How to play", styleAccent)
	y := 2
	for _, instruction := range h.Instructions {
		for i, line := range wrap(instruction, c.W-2*HOW_TO_INDENT-2) {
			prefix := "  "
			if i == 0 {
				prefix = "- "
			}
			c.Text(HOW_TO_INDENT, y, prefix+line, styleText)
			y++
		}
	}
	c.Centered(y+1, "space: back", styleAccent)
}

// renderGrid draws the maze with its top-left corner at (0, top). Each cell
// owns a 3×3 block of characters; neighbouring blocks share their border.
func renderGrid(c *Canvas, grid *model.Grid, top int, visible func(*model.Cell) bool) {
	grid.Each(func(cell *model.Cell) {
		if visible != nil && !visible(cell) {
			return
		}
		x, y := 2*cell.Col(), top+2*cell.Row()
		for _, dx := range []int{0, 2} {
			for _, dy := range []int{0, 2} {
				c.Set(x+dx, y+dy, RUNE_CORNER, styleText)
			}
		}
		wall := func(d model.Direction, wx, wy int, r rune) {
			if cell.Wall(d) {
				c.Set(wx, wy, r, styleText)
			}
		}
		wall(model.Up, x+1, y, RUNE_WALL_H)
		wall(model.Down, x+1, y+2, RUNE_WALL_H)
		wall(model.Left, x, y+1, RUNE_WALL_V)
		wall(model.Right, x+2, y+1, RUNE_WALL_V)

		center := ' '
		if cell == grid.Goal() {
			center = RUNE_GOAL
		}
		style := styleAccent
		if cell.Visited {
			style = style.Background(Paint(palette.COLOR_DARK_GRAY))
		}
		c.Set(x+1, y+1, center, style)
	})
}

func renderMazePlay(c *Canvas, m *game.MazePlay, threshold float64) {
	timeStyle := styleText
	if m.Remaining() <= threshold {
		timeStyle = styleAlert
	}
	c.Text(0, 0, fmt.Sprintf("%s  %dx%d", m.Algorithm().Name(), m.Size(), m.Size()), styleText)
	clock := fmt.Sprintf("%d", m.RemainingSeconds())
	c.Text(c.W-len(clock)-1, 0, clock, timeStyle)

	renderGrid(c, m.Grid(), MAZE_TOP, m.CellVisible)
	if r, ok := m.ScanningRegion(); ok {
		cp := m.CellPixels()
		for col := r.X / cp; col < (r.X+r.W)/cp; col++ {
			for row := r.Y / cp; row < (r.Y+r.H)/cp; row++ {
				x, y := 2*col+1, MAZE_TOP+2*row+1
				if x < c.W && y < c.H {
					c.Set(x, y, c.At(x, y).Rune, styleScanner)
				}
			}
		}
		return
	}
	p := m.Player()
	c.Set(2*p.Col()+1, MAZE_TOP+2*p.Row()+1, RUNE_PLAYER, stylePlayer)
}

func renderGameOver(c *Canvas, o *game.GameOver) {
	style := styleAlert
	if o.Win {
		style = styleAccent
	}
	mid := c.H / 2
	c.Centered(mid-2, o.Heading(), style)
	c.Centered(mid, fmt.Sprintf("levels played: %d", len(o.Record)), styleText)
	c.Centered(mid+2, "space: main menu  r: replay", styleText)
}

func renderReplay(c *Canvas, r *game.GameReplay) {
	status := fmt.Sprintf("replay level %d/%d", r.Level()+1, r.Levels())
	if r.Finished() {
		status += "  done"
	}
	c.Text(0, 0, status, styleText)
	c.Text(0, 1, "left/right: level  space: back", styleText)

	renderGrid(c, r.Grid(), MAZE_TOP, nil)
	for _, cell := range replay.Trace(r.Current())[:r.Cursor()] {
		c.Set(2*cell.Col()+1, MAZE_TOP+2*cell.Row()+1, RUNE_FOOTSTEP, styleTrace)
	}
	at := r.Cell()
	c.Set(2*at.Col()+1, MAZE_TOP+2*at.Row()+1, RUNE_PLAYER, stylePlayer)
}
