package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	"golang.org/x/image/font"

	"github.com/zucenko/mazewalk/game"
	"github.com/zucenko/mazewalk/model"
	"github.com/zucenko/mazewalk/palette"
	"github.com/zucenko/mazewalk/replay"
)

const TEXT_MARGIN = 20

func (d *Driver) draw(screen *ebiten.Image) error {
	if err := screen.Fill(palette.COLOR_BACKGROUND); err != nil {
		return err
	}
	switch s := d.Game.Top().(type) {
	case *game.MainMenu:
		d.drawMainMenu(screen, s)
	case *game.HowTo:
		d.drawHowTo(screen, s)
	case *game.MazePlay:
		d.drawMazePlay(screen, s)
	case *game.GameOver:
		d.drawGameOver(screen, s)
	case *game.GameReplay:
		d.drawReplay(screen, s)
	default:
		return fmt.Errorf("no renderer for %s", s.Kind().Name())
	}
	return nil
}

func (d *Driver) window() int {
	return d.Game.Config().Game.Window
}

func (d *Driver) centered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, (d.window()-w)/2, y, clr)
}

func (d *Driver) drawMainMenu(screen *ebiten.Image, m *game.MainMenu) {
	d.centered(screen, game.GAME_NAME, d.Font, 160, palette.COLOR_LIGHT_GRAY)
	for b := game.Button(0); b < game.BUTTON_COUNT; b++ {
		r := m.Buttons[b]
		clr := palette.COLOR_LIGHT_GRAY
		if b == m.Selected {
			clr = palette.COLOR_LIGHT_GREEN
		}
		d.Button.SetColor(clr)
		d.Button.SetPosition(r.X, r.Y)
		d.Button.SetSize(r.W, r.H)
		d.Button.Draw(screen)

		label := b.Label()
		w := font.MeasureString(d.Small, label).Ceil()
		text.Draw(screen, label, d.Small, r.X+(r.W-w)/2, r.Y+r.H/2+5, clr)
	}
}

// wrap breaks s into lines no wider than width.
func wrap(face font.Face, s string, width int) []string {
	lines := make([]string, 0)
	line := ""
	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && font.MeasureString(face, candidate).Ceil() > width {
			lines = append(lines, line)
			candidate = word
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func (d *Driver) drawHowTo(screen *ebiten.Image, h *game.HowTo) {
	d.centered(screen, "How to play", d.Font, 60, palette.COLOR_LIGHT_GRAY)
	y := 110
	lineHeight := d.Small.Metrics().Height.Ceil() + 4
	for _, instruction := range h.Instructions {
		for _, line := range wrap(d.Small, instruction, d.window()-2*TEXT_MARGIN) {
			text.Draw(screen, line, d.Small, TEXT_MARGIN, y, palette.COLOR_LIGHT_GRAY)
			y += lineHeight
		}
		y += lineHeight / 2
	}
	d.centered(screen, "press space to go back", d.Small, d.window()-TEXT_MARGIN, palette.COLOR_LIGHT_GREEN)
}

// drawCell paints the cell background, the goal platform and the walls.
func (d *Driver) drawCell(screen *ebiten.Image, grid *model.Grid, c *model.Cell, cp int) {
	cfg := d.Game.Config().Game
	x, y, size := float64(c.Col()*cp), float64(c.Row()*cp), float64(cp)
	if c.Visited {
		ebitenutil.DrawRect(screen, x, y, size, size, palette.COLOR_DARK_GRAY)
	}
	if c == grid.Goal() {
		m := float64(cfg.PlatformMargin)
		ebitenutil.DrawRect(screen, x+m, y+m, size-2*m, size-2*m, palette.COLOR_LIGHT_GREEN)
	}
	t := float64(cfg.WallThickness)
	if c.Wall(model.Up) {
		ebitenutil.DrawRect(screen, x, y, size, t, palette.COLOR_LIGHT_GRAY)
	}
	if c.Wall(model.Right) {
		ebitenutil.DrawRect(screen, x+size-t, y, t, size, palette.COLOR_LIGHT_GRAY)
	}
	if c.Wall(model.Down) {
		ebitenutil.DrawRect(screen, x, y+size-t, size, t, palette.COLOR_LIGHT_GRAY)
	}
	if c.Wall(model.Left) {
		ebitenutil.DrawRect(screen, x, y, t, size, palette.COLOR_LIGHT_GRAY)
	}
}

func (d *Driver) drawPlayer(screen *ebiten.Image, x, y float64, cp int, clr color.Color) {
	m := float64(d.Game.Config().Game.PlayerMargin)
	size := float64(cp) - 2*m
	ebitenutil.DrawRect(screen, x+m, y+m, size, size, clr)
}

func (d *Driver) drawMazePlay(screen *ebiten.Image, m *game.MazePlay) {
	cp := m.CellPixels()
	grid := m.Grid()
	grid.Each(func(c *model.Cell) {
		if m.CellVisible(c) {
			d.drawCell(screen, grid, c, cp)
		}
	})
	if r, ok := m.ScanningRegion(); ok {
		clr := palette.COLOR_SCANNER
		clr.A = uint8(float64(clr.A) * d.scanAlpha)
		clr.R = uint8(float64(clr.R) * d.scanAlpha)
		clr.G = uint8(float64(clr.G) * d.scanAlpha)
		clr.B = uint8(float64(clr.B) * d.scanAlpha)
		ebitenutil.DrawRect(screen, float64(r.X), float64(r.Y), float64(r.W), float64(r.H), clr)
	}
	if m.Phase() == game.GAME_STARTED {
		d.drawPlayer(screen, d.playerX, d.playerY, cp, palette.COLOR_PLAYER)
	}

	clr := palette.COLOR_LIGHT_GRAY
	if m.Remaining() <= d.Game.Config().Game.WarningThreshold {
		clr = palette.COLOR_PLAYER
	}
	label := fmt.Sprintf("%d", m.RemainingSeconds())
	w := font.MeasureString(d.Font, label).Ceil()
	text.Draw(screen, label, d.Font, d.window()-w-10, 30, clr)
}

func (d *Driver) drawGameOver(screen *ebiten.Image, o *game.GameOver) {
	clr := palette.COLOR_PLAYER
	if o.Win {
		clr = palette.COLOR_LIGHT_GREEN
	}
	mid := d.window() / 2
	d.centered(screen, o.Heading(), d.Font, mid-20, clr)
	d.centered(screen, fmt.Sprintf("levels played: %d", len(o.Record)), d.Small, mid+20, palette.COLOR_LIGHT_GRAY)
	d.centered(screen, "space: main menu    r: replay", d.Small, mid+60, palette.COLOR_LIGHT_GRAY)
}

func (d *Driver) drawReplay(screen *ebiten.Image, r *game.GameReplay) {
	grid := r.Grid()
	cp := d.window() / grid.Size()
	grid.Each(func(c *model.Cell) {
		d.drawCell(screen, grid, c, cp)
	})
	// footsteps walked so far on this level
	trace := replay.Trace(r.Current())
	for _, c := range trace[:r.Cursor()] {
		d.drawPlayer(screen, float64(c.Col()*cp), float64(c.Row()*cp), cp, palette.COLOR_GRAY)
	}
	at := r.Cell()
	d.drawPlayer(screen, float64(at.Col()*cp), float64(at.Row()*cp), cp, palette.COLOR_PLAYER)

	status := fmt.Sprintf("level %d/%d", r.Level()+1, r.Levels())
	if r.Finished() {
		status += "  done"
	}
	text.Draw(screen, status, d.Small, 10, d.window()-10, palette.COLOR_LIGHT_GREEN)
}
