package main

import (
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"
)

type Glyph struct {
	Rune  rune
	Style tcell.Style
}

// Canvas is a character frame built off screen and copied to the terminal
// in one go.
type Canvas struct {
	W, H  int
	cells [][]Glyph
}

func NewCanvas(w, h int) *Canvas {
	cells := make([][]Glyph, h)
	for y := range cells {
		cells[y] = make([]Glyph, w)
		for x := range cells[y] {
			cells[y][x] = Glyph{Rune: ' ', Style: tcell.StyleDefault}
		}
	}
	return &Canvas{W: w, H: h, cells: cells}
}

// Set writes one glyph. Positions off the canvas are ignored.
func (c *Canvas) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return
	}
	c.cells[y][x] = Glyph{Rune: r, Style: style}
}

func (c *Canvas) Text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.Set(x, y, r, style)
		x++
	}
}

// Centered writes s in the middle of row y.
func (c *Canvas) Centered(y int, s string, style tcell.Style) {
	c.Text((c.W-len([]rune(s)))/2, y, s, style)
}

func (c *Canvas) At(x, y int) Glyph {
	return c.cells[y][x]
}

// Line returns row y as text with trailing blanks removed.
func (c *Canvas) Line(y int) string {
	var b strings.Builder
	for _, g := range c.cells[y] {
		b.WriteRune(g.Rune)
	}
	return strings.TrimRight(b.String(), " ")
}

func (c *Canvas) Blit(screen tcell.Screen) {
	for y, row := range c.cells {
		for x, g := range row {
			screen.SetContent(x, y, g.Rune, nil, g.Style)
		}
	}
}

// Paint maps a palette color onto a terminal color.
func Paint(clr color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B))
}
